// Package envconfig reads SRGAN_* environment variables.
//
//   - SRGAN_NUM_THREADS: goroutines used by CPU kernels (default: number of CPUs)
//   - SRGAN_DEBUG: 1/true enables debug logging
//   - SRGAN_SEED: weight initialisation seed for the CLI (default 1)
//
// Command-line flags take precedence over these values.
package envconfig

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// NumThreads returns the kernel goroutine limit.
// Configurable via SRGAN_NUM_THREADS.
var NumThreads = Uint("SRGAN_NUM_THREADS", uint(runtime.NumCPU()))

// Seed returns the default weight initialisation seed.
// Configurable via SRGAN_SEED.
var Seed = Int64("SRGAN_SEED", 1)

// LogLevel returns the log level.
// Configurable via SRGAN_DEBUG: 0/false = INFO (default), 1/true = DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SRGAN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// Uint returns a getter for an unsigned variable with a default.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil || n == 0 {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Int64 returns a getter for a signed variable with a default.
func Int64(key string, defaultValue int64) func() int64 {
	return func() int64 {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return n
			}
		}
		return defaultValue
	}
}

// Var returns an environment variable stripped of whitespace and quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// Values returns the current configuration for logging.
func Values() map[string]any {
	return map[string]any{
		"SRGAN_NUM_THREADS": NumThreads(),
		"SRGAN_DEBUG":       LogLevel().String(),
		"SRGAN_SEED":        Seed(),
	}
}
