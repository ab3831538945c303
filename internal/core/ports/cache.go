package ports

import "time"

// Cache is a persisted key-value store with per-entry expiry.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type Cache interface {
	// Get returns the value stored under key.
	// Missing, expired and unreadable entries are all reported as absent.
	Get(key string) ([]byte, bool)

	// Set stores value under key until now + ttl, replacing any previous value.
	Set(key string, value []byte, ttl time.Duration) error

	// Delete removes the entry stored under key.
	Delete(key string) error

	// Clear removes every entry.
	Clear() error
}
