// Package cache provides pluggable byte caches.
//
// Kanjipath uses a cache to skip the expensive EDICT2 dictionary parse on
// repeated runs and to reuse computed API responses. Three backends exist:
//   - FileCache: per-user directory cache for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching entirely
//
// Values are opaque bytes with a TTL; keys are built with [Key] so that
// every backend sees the same stable, filesystem-safe identifiers.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when a remote cache backend cannot be reached.
// Callers treat it as a miss or fail, at their discretion.
var ErrUnavailable = errors.New("cache unavailable")

// Cache stores opaque byte values with expiration.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Scoped wraps a cache so that all keys carry a namespace prefix. The server
// and the CLI share backends but must not collide.
func Scoped(inner Cache, prefix string) Cache {
	return &scoped{inner: inner, prefix: prefix}
}

type scoped struct {
	inner  Cache
	prefix string
}

func (s *scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

func (s *scoped) Close() error { return s.inner.Close() }
