// Package storage defines the key-value persistence port the session stores
// write through, plus its backends: an in-process map, a JSON file mirror
// and a MongoDB collection.
package storage

import "context"

// KV is the durable key-value port. Implementations must be safe for
// concurrent use.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the value, replacing any previous one.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
