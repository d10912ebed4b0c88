// Package metadata is the key/value store of the local client database.
// The session tokens live here.
package metadata

import (
	"context"
)

// Repository reads and writes string values by key.
type Repository interface {
	// Get reports ok=false, with no error, when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes keys; missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// GetMany returns the stored subset of keys; absent keys are left out.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
}
