package domain

import "time"

// CacheEntry is a persisted value with an absolute expiry time.
type CacheEntry[T any] struct {
	Value     T         `json:"value"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewCacheEntry stamps a value with expiresAt = now + ttl.
func NewCacheEntry[T any](value T, now time.Time, ttl time.Duration) CacheEntry[T] {
	return CacheEntry[T]{Value: value, ExpiresAt: now.Add(ttl)}
}

// Expired reports whether the entry must be treated as absent at now.
// An entry is still valid at exactly ExpiresAt.
func (e CacheEntry[T]) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
