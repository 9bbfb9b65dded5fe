package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/teamfit/teamfit/internal/constants"
)

// JSONBackend keeps each collection in its own <key>.json file inside a
// directory. There is no in-memory copy: every read loads the file and
// every write replaces it.
type JSONBackend struct {
	dir string
}

func NewJSONBackend(dir string) *JSONBackend {
	return &JSONBackend{dir: dir}
}

func (b *JSONBackend) Init() error {
	marker := b.collectionPath(constants.KeyMembers)
	if _, err := os.Stat(marker); err == nil {
		return fmt.Errorf("storage already initialized at %s", b.dir)
	}

	if err := os.MkdirAll(b.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// An empty members collection marks the directory as initialized.
	return b.write(constants.KeyMembers, []byte("[]"))
}

func (b *JSONBackend) Load() error {
	info, err := os.Stat(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'teamfit init' first")
		}
		return fmt.Errorf("failed to access data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", b.dir)
	}
	return nil
}

func (b *JSONBackend) Close() error {
	return nil
}

func (b *JSONBackend) Path() string {
	return b.dir
}

func (b *JSONBackend) collectionPath(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *JSONBackend) read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.collectionPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s collection: %w", key, err)
	}
	return data, true, nil
}

func (b *JSONBackend) write(key string, data []byte) error {
	if err := os.WriteFile(b.collectionPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s collection: %w", key, err)
	}
	return nil
}
