package prefs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/adapters/prefs"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "preferences")
	s := prefs.New(dir, 0, clockwork.NewFakeClock())
	assert.Equal(t, dir, s.Path())

	got, err := s.Load()
	require.NoError(t, err)
	assert.True(t, got.Empty(), "a missing file is an empty selection")

	require.NoError(t, s.Save(domain.ResourceSet{"Standard", "CRE", "Standard"}))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceSet{"Standard", "CRE"}, got)

	require.NoError(t, s.Save(nil))
	got, err = s.Load()
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := prefs.New(t.TempDir(), 0, clock)
	require.NoError(t, s.Save(domain.ResourceSet{"CRE"}))

	clock.Advance(domain.PreferencesTTL)
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceSet{"CRE"}, got)

	clock.Advance(time.Millisecond)
	got, err = s.Load()
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestStore_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prefs.FileName), []byte("not json"), 0o600))

	_, err := prefs.New(dir, 0, clockwork.NewFakeClock()).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPreferencesReadFailed.Error())
}

func TestStore_FileFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, prefs.New(dir, time.Hour, clock).Save(domain.ResourceSet{"CRE"}))

	data, err := os.ReadFile(filepath.Join(dir, prefs.FileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": ["CRE"], "expires_at": "2024-01-01T01:00:00Z"}`, string(data))
}
