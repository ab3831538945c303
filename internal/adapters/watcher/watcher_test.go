package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/adapters/watcher"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/Pa04rth/OpenCRE/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(mockLogger)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := filepath.Join(t.TempDir(), "preferences")
	require.NoError(t, w.Start(ctx, dir), "a missing directory is created")

	target := filepath.Join(dir, "selectedResources.json")
	require.NoError(t, os.WriteFile(target, []byte("[]"), 0o600))

	got := make(chan ports.WatchEvent, 1)
	go func() {
		for ev := range w.Events() {
			if ev.Path == target {
				got <- ev
				return
			}
		}
	}()

	select {
	case ev := <-got:
		assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the preference file")
	}

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop(), "stop is idempotent")
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, t.TempDir()))
	cancel()

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after cancel")
	}
}
