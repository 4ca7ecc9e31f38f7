// Package cache stores computed plans so that repeated runs over the same
// project skip generation, clipping and aggregation.
//
// # Backends
//
//   - [FileCache]: JSON files under the user cache directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//   - [NullCache]: stores nothing, used when caching is disabled
//
// # Keys
//
// Keys are produced by a [Keyer] from a hash of the plan inputs, so the
// caller never builds key strings by hand:
//
//	hash, _ := cache.HashJSON(input)
//	key := keyer.PlanKey(hash, cache.PlanKeyOpts{Pattern: "brick", Clip: "exact"})
//
// Plans are pure functions of their inputs, so entries never go stale; TTLs
// only bound storage.
package cache

import (
	"context"
	"time"
)

// TTLPlan is how long a computed plan is kept.
const TTLPlan = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// NullCache is a cache that never stores anything.
type NullCache struct{}

// NewNullCache returns a disabled cache.
func NewNullCache() Cache { return NullCache{} }

// Get always misses.
func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

// Set discards data.
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// Delete does nothing.
func (NullCache) Delete(context.Context, string) error { return nil }

// Close does nothing.
func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
