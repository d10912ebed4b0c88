// Package cache stores raw API responses so that repeated listings do not
// hit the backend. Entries belong to the signed-in session and are purged
// on logout.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented TTL cache.
type Cache interface {
	// Get reports ok=false for missing and expired keys.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value; ttl <= 0 selects the implementation default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// Purge drops every entry owned by this cache.
	Purge(ctx context.Context) error
}
