//go:build debug

package assert

import "fmt"

func fail(msg string, args ...any) error {
	panic(fmt.Sprintf(msg, args...))
}
