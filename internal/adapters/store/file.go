// Package store implements the persisted expiring cache.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/cespare/xxhash/v2"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
)

// FileCache implements ports.Cache using one JSON file per key.
type FileCache struct {
	dir    string
	clock  clockwork.Clock
	logger ports.Logger
}

// NewFileCache creates a FileCache rooted at dir.
// The directory is created on the first write.
func NewFileCache(dir string, clock clockwork.Clock, logger ports.Logger) *FileCache {
	return &FileCache{dir: dir, clock: clock, logger: logger}
}

// Dir returns the directory entries are stored in.
func (c *FileCache) Dir() string {
	return c.dir
}

// Get returns the value stored under key if it has not expired.
func (c *FileCache) Get(key string) ([]byte, bool) {
	filename := c.filename(key)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Error(zerr.With(zerr.Wrap(err, "failed to read cache entry"), "key", key))
		}
		return nil, false
	}

	return decodeEntry(data, key, c.clock.Now(), c.logger)
}

// Set stores value under key until now + ttl.
func (c *FileCache) Set(key string, value []byte, ttl time.Duration) error {
	data, err := encodeEntry(value, c.clock.Now(), ttl)
	if err != nil {
		return zerr.With(err, "key", key)
	}

	if err := os.MkdirAll(c.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "dir", c.dir)
	}

	// Write to a sibling file and rename so readers never see a partial entry.
	filename := c.filename(key)
	tmp := filename + ".tmp"
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	if err := os.Rename(tmp, filename); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}

	return nil
}

// Delete removes the entry stored under key. Deleting a missing key is not an error.
func (c *FileCache) Delete(key string) error {
	if err := os.Remove(c.filename(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDeleteFailed.Error()), "key", key)
	}
	return nil
}

// Clear removes the cache directory and everything in it.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDeleteFailed.Error()), "dir", c.dir)
	}
	return nil
}

func (c *FileCache) filename(key string) string {
	return filepath.Join(c.dir, strconv.FormatUint(xxhash.Sum64String(key), 16)+".json")
}

func encodeEntry(value []byte, now time.Time, ttl time.Duration) ([]byte, error) {
	if !json.Valid(value) {
		return nil, zerr.Wrap(errors.New("value is not valid JSON"), domain.ErrCacheMarshalFailed.Error())
	}
	entry := domain.NewCacheEntry(json.RawMessage(value), now, ttl)
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error())
	}
	return data, nil
}

// decodeEntry unwraps a persisted envelope. Corrupt envelopes are logged and
// reported as absent, so a damaged cache behaves like an empty one.
func decodeEntry(data []byte, key string, now time.Time, logger ports.Logger) ([]byte, bool) {
	var entry domain.CacheEntry[json.RawMessage]
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.Warn("ignoring corrupt cache entry " + strconv.Quote(key) + ": " + err.Error())
		return nil, false
	}
	if entry.Expired(now) {
		return nil, false
	}
	return entry.Value, true
}
