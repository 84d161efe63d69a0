package envconfig

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumThreads(t *testing.T) {
	t.Setenv("SRGAN_NUM_THREADS", "")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())

	t.Setenv("SRGAN_NUM_THREADS", "3")
	assert.Equal(t, uint(3), NumThreads())

	t.Setenv("SRGAN_NUM_THREADS", "'6'")
	assert.Equal(t, uint(6), NumThreads())

	t.Setenv("SRGAN_NUM_THREADS", "zero")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())

	t.Setenv("SRGAN_NUM_THREADS", "0")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())
}

func TestSeed(t *testing.T) {
	t.Setenv("SRGAN_SEED", "")
	assert.Equal(t, int64(1), Seed())

	t.Setenv("SRGAN_SEED", "-42")
	assert.Equal(t, int64(-42), Seed())

	t.Setenv("SRGAN_SEED", "abc")
	assert.Equal(t, int64(1), Seed())
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}

	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("SRGAN_DEBUG", value)
			assert.Equal(t, want, LogLevel())
		})
	}
}

func TestValues(t *testing.T) {
	t.Setenv("SRGAN_NUM_THREADS", "2")
	t.Setenv("SRGAN_DEBUG", "1")

	values := Values()
	assert.Equal(t, uint(2), values["SRGAN_NUM_THREADS"])
	assert.Equal(t, "DEBUG", values["SRGAN_DEBUG"])
}
