// Package storage provides the durable key-value store that backs all
// persisted application state.
package storage

import "context"

// Store is a persistent string-keyed store. Implementations must be durable
// across process restarts. Values are opaque to the store; typed access
// goes through the repository.
type Store interface {
	// Get returns the value stored under key. ok is false when the key was
	// never written or has been removed.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear deletes every key.
	Clear(ctx context.Context) error
}
