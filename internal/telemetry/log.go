// Package telemetry provides the structured loggers shared across the
// folding verifier's packages. Every package that wants to log gets a
// named child logger via Named, so log lines attribute themselves to
// the phase that emitted them without a full tracing framework.
package telemetry

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

func root() zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		if lvl, err := zerolog.ParseLevel(os.Getenv("PROTOGALAXY_LOG")); err == nil {
			level = lvl
		}
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	})
	return base
}

// Named returns a logger tagged with the component that owns it.
func Named(component string) zerolog.Logger {
	return root().With().Str("component", component).Logger()
}
