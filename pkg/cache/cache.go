// Package cache provides result caching for graph queries.
//
// The CLI commands memoize query results keyed by the content hash of
// the graph file they were computed from, so repeated queries against an
// unchanged graph skip the import and computation entirely. A [Keyer]
// derives the cache keys; [FileCache] stores entries on disk and
// [NullCache] disables caching without changing call sites.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that treat a missing entry as an
// error rather than a boolean.
var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque byte values under string keys with optional
// expiry. Implementations must treat a missing key as (nil, false, nil),
// not as an error.
type Cache interface {
	// Get retrieves the value for key. The second return reports whether
	// the entry exists and is still fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero stores the entry without
	// expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
