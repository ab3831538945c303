// Package snapshot provides typed access to a ports.Cache.
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/Pa04rth/OpenCRE/internal/core/domain"
	"github.com/Pa04rth/OpenCRE/internal/core/ports"
	"go.trai.ch/zerr"
)

// Read decodes the value cached under key.
// A payload that does not decode into T is reported as absent.
func Read[T any](c ports.Cache, key string) (T, bool) {
	var v T
	data, ok := c.Get(key)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Write encodes v and caches it under key for ttl.
func Write[T any](c ports.Cache, key string, v T, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheMarshalFailed.Error()), "key", key)
	}
	return c.Set(key, data, ttl)
}
