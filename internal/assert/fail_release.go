//go:build !debug

package assert

import "fmt"

func fail(msg string, args ...any) error {
	return fmt.Errorf(msg, args...)
}
