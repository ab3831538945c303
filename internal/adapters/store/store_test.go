package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/adapters/store"
	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/Pa04rth/OpenCRE/internal/core/ports/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type driver struct {
	name string
	open func(t *testing.T, clock clockwork.Clock, log ports.Logger) ports.Cache
}

func drivers() []driver {
	return []driver{
		{
			name: "file",
			open: func(t *testing.T, clock clockwork.Clock, log ports.Logger) ports.Cache {
				t.Helper()
				return store.NewFileCache(t.TempDir(), clock, log)
			},
		},
		{
			name: "badger",
			open: func(t *testing.T, clock clockwork.Clock, log ports.Logger) ports.Cache {
				t.Helper()
				c, err := store.OpenBadgerCache("", clock, log)
				require.NoError(t, err)
				t.Cleanup(func() { _ = c.Close() })
				return c
			},
		},
	}
}

func TestCache_SetGet(t *testing.T) {
	t.Parallel()

	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			clock := clockwork.NewFakeClockAt(epoch)
			c := d.open(t, clock, mocks.NewMockLogger(ctrl))

			_, ok := c.Get(domain.DataStoreKey)
			assert.False(t, ok, "empty cache must miss")

			require.NoError(t, c.Set(domain.DataStoreKey, []byte(`{"a":1}`), domain.StoreTTL))
			got, ok := c.Get(domain.DataStoreKey)
			require.True(t, ok)
			assert.JSONEq(t, `{"a":1}`, string(got))

			require.NoError(t, c.Set(domain.DataStoreKey, []byte(`{"a":2}`), domain.StoreTTL))
			got, ok = c.Get(domain.DataStoreKey)
			require.True(t, ok)
			assert.JSONEq(t, `{"a":2}`, string(got), "set overwrites unconditionally")
		})
	}
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			clock := clockwork.NewFakeClockAt(epoch)
			c := d.open(t, clock, mocks.NewMockLogger(ctrl))

			require.NoError(t, c.Set(domain.RecordTreeKey, []byte(`[]`), domain.StoreTTL))

			clock.Advance(domain.StoreTTL)
			_, ok := c.Get(domain.RecordTreeKey)
			assert.True(t, ok, "entry is still valid at exactly its expiry")

			clock.Advance(time.Millisecond)
			_, ok = c.Get(domain.RecordTreeKey)
			assert.False(t, ok, "entry is absent once expired")
		})
	}
}

func TestCache_DeleteClear(t *testing.T) {
	t.Parallel()

	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			c := d.open(t, clockwork.NewFakeClockAt(epoch), mocks.NewMockLogger(ctrl))

			require.NoError(t, c.Set("a", []byte(`1`), time.Hour))
			require.NoError(t, c.Set("b", []byte(`2`), time.Hour))

			require.NoError(t, c.Delete("a"))
			_, ok := c.Get("a")
			assert.False(t, ok)
			_, ok = c.Get("b")
			assert.True(t, ok)

			require.NoError(t, c.Clear())
			_, ok = c.Get("b")
			assert.False(t, ok)
		})
	}
}

func TestCache_RejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	for _, d := range drivers() {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			c := d.open(t, clockwork.NewFakeClockAt(epoch), mocks.NewMockLogger(ctrl))

			err := c.Set("k", []byte(`{not json`), time.Hour)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrCacheMarshalFailed.Error())
		})
	}
}

func TestFileCache_CorruptEntryIsAbsent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	c := store.NewFileCache(dir, clockwork.NewFakeClockAt(epoch), log)
	require.NoError(t, c.Set(domain.DataStoreKey, []byte(`{}`), domain.StoreTTL))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	//nolint:gosec // 0644 is fine for test
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600))

	_, ok := c.Get(domain.DataStoreKey)
	assert.False(t, ok)
}

func TestFileCache_DeleteMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	c := store.NewFileCache(t.TempDir(), clockwork.NewFakeClockAt(epoch), mocks.NewMockLogger(ctrl))
	require.NoError(t, c.Delete("missing"))
	require.NoError(t, c.Clear())
}

func TestNew(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	clock := clockwork.NewFakeClockAt(epoch)

	c, err := store.New(domain.CacheConfig{Driver: domain.CacheDriverFile, Dir: t.TempDir()}, clock, log)
	require.NoError(t, err)
	assert.IsType(t, &store.FileCache{}, c)

	c, err = store.New(domain.CacheConfig{Driver: domain.CacheDriverBadger, Dir: t.TempDir()}, clock, log)
	require.NoError(t, err)
	require.IsType(t, &store.BadgerCache{}, c)
	require.NoError(t, c.(*store.BadgerCache).Close())

	_, err = store.New(domain.CacheConfig{Driver: "redis"}, clock, log)
	require.ErrorContains(t, err, domain.ErrConfigInvalid.Error())
}
