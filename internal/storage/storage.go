package storage

// Storage defines the interface for durable client-state storage.
// Implementations can use the local filesystem or an in-memory map (tests).
//
// Keys are short, stable identifiers (e.g., "shopping-cart"); values are
// opaque serialized blobs. A whole value is overwritten on every Put.
type Storage interface {
	// Put stores a value under the key, replacing any previous value.
	Put(key string, value []byte) error

	// Get retrieves the value stored under the key.
	// Returns ErrKeyNotFound when the key has never been written.
	Get(key string) ([]byte, error)

	// Delete removes the key. Returns nil if the key doesn't exist (idempotent).
	Delete(key string) error

	// Exists checks whether a value is stored under the key.
	Exists(key string) (bool, error)
}
