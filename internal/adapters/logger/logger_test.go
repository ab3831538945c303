package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Pa04rth/OpenCRE/internal/adapters/logger"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Debug("hidden")
	lg.Info("loaded 3 documents")
	lg.Warn("cache is stale")
	lg.Error(errors.New("boom"))

	assert.Equal(t, "loaded 3 documents\n! cache is stale\n✗ Error: boom\n", buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetLevel("debug")
	lg.Debug("visible")
	assert.Equal(t, "● visible\n", buf.String())

	buf.Reset()
	lg.SetLevel("error")
	lg.Info("hidden")
	lg.Warn("hidden")
	assert.Empty(t, buf.String())

	lg.SetLevel("nonsense")
	lg.Info("back to info")
	assert.Equal(t, "back to info\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Configure(domain.LogConfig{Format: domain.LogFormatJSON, Level: "info"})

	lg.Info("hello")
	lg.Error(zerr.Wrap(errors.New("root"), "outer"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])

	require.NoError(t, json.Unmarshal(lines[1], &rec))
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Contains(t, rec["error"], "outer")
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(zerr.Wrap(zerr.Wrap(errors.New("connection refused"), "failed to load documents"), "sync failed"))

	assert.Equal(t,
		"✗ Error: sync failed\n\n  Caused by:\n    → failed to load documents\n    → connection refused\n",
		buf.String())
}

func TestLogger_NilError(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutputPreservesMode(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("x")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}
