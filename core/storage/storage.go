package storage

import "context"

// Store is the persisted key-value contract the schedule is saved through.
// Values are opaque JSON text; a write is atomic at the granularity of one key.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value, replacing any previous one.
	Set(ctx context.Context, key string, value string) error
}
