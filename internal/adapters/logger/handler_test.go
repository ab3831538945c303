package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Pa04rth/OpenCRE/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
)

func TestPrettyHandler_Lines(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	log := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log.Debug("fetching", "page", 2)
	log.With("key", "C1").WithGroup("cache").Info("hit", "age", "1h")
	log.Warn("stale")

	assert.Equal(t, "● fetching page=2\nhit cache.key=C1 cache.age=1h\n! stale\n", buf.String())
}

func TestPrettyHandler_WithAttrsDoesNotShareState(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	base := slog.New(logger.NewPrettyHandler(buf, nil)).With("a", 1)
	left := base.With("b", 2)
	right := base.With("c", 3)

	left.Info("left")
	right.Info("right")

	assert.Equal(t, "left a=1 b=2\nright a=1 c=3\n", buf.String())
}
