// Package plog is a thin zerolog wrapper scoped to this module's two
// variable-time code paths: G2OnProvePrepared construction and residue
// witness recovery. G2OnProvePrepared traces each cross-verified step;
// residue witness recovery traces its rounds, and its random cubic
// non-residue search retries an unbounded, data-dependent number of
// times, so a caller debugging a slow or stuck run needs visibility into
// how many rounds ran, not just the final result.
package plog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	mu     sync.RWMutex
	global zerolog.Logger
)

// Logger returns the shared logger, defaulting to zerolog's console
// writer at info level. Set PAIRING_LOG_LEVEL to "debug" or "trace" to
// see per-round tracing from the variable-time paths.
func Logger() zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		if lvl, err := zerolog.ParseLevel(os.Getenv("PAIRING_LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
			level = lvl
		}
		global = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	})
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Disable swaps the shared logger for zerolog.Nop(), silencing both
// named variable-time paths. Mirrors gnark/logger's Disable(): a caller
// embedding this module who doesn't want G2OnProvePrepared/ComputeCWi
// tracing on stderr calls this once at startup.
func Disable() {
	once.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	global = zerolog.Nop()
}
