package store

import (
	"errors"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"github.com/dgraph-io/badger/v4"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"
)

// BadgerCache implements ports.Cache on top of a badger database.
//
// Entries carry the same envelope as FileCache. Badger's native TTL only
// reclaims space; expiry is decided by the envelope against the injected clock.
type BadgerCache struct {
	db     *badger.DB
	clock  clockwork.Clock
	logger ports.Logger
}

// OpenBadgerCache opens (or creates) a badger database in dir.
// An empty dir opens an in-memory database.
func OpenBadgerCache(dir string, clock clockwork.Clock, logger ports.Logger) (*BadgerCache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "dir", dir)
	}

	return &BadgerCache{db: db, clock: clock, logger: logger}, nil
}

// Get returns the value stored under key if it has not expired.
func (c *BadgerCache) Get(key string) ([]byte, bool) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			c.logger.Error(zerr.With(zerr.Wrap(err, "failed to read cache entry"), "key", key))
		}
		return nil, false
	}

	return decodeEntry(data, key, c.clock.Now(), c.logger)
}

// Set stores value under key until now + ttl.
func (c *BadgerCache) Set(key string, value []byte, ttl time.Duration) error {
	data, err := encodeEntry(value, c.clock.Now(), ttl)
	if err != nil {
		return zerr.With(err, "key", key)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(key), data)
		if ttl > 0 {
			entry = entry.WithTTL(ttl)
		}
		return txn.SetEntry(entry)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "key", key)
	}
	return nil
}

// Delete removes the entry stored under key.
func (c *BadgerCache) Delete(key string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDeleteFailed.Error()), "key", key)
	}
	return nil
}

// Clear drops every entry in the database.
func (c *BadgerCache) Clear() error {
	if err := c.db.DropAll(); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDeleteFailed.Error())
	}
	return nil
}

// Close releases the database.
func (c *BadgerCache) Close() error {
	return c.db.Close()
}
