package storage

// Backend is the key-value persistence primitive under the Store. Each
// collection is one JSON document under its own key; a write replaces the
// whole document. Backends are not safe for concurrent use, and two
// processes sharing the same path will clobber each other's writes (last
// whole-collection write wins).
type Backend interface {
	// Init creates the underlying storage location.
	Init() error
	// Load verifies the storage location exists and opens it.
	Load() error
	// Close releases any open handles.
	Close() error
	// Path returns the configured storage path.
	Path() string

	read(key string) (data []byte, found bool, err error)
	write(key string, data []byte) error
}
