package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps every collection as a JSON document in a single
// key-value table. The persistence contract is identical to the JSON
// backend; SQLite only buys atomic file handling.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

func (b *SQLiteBackend) Init() error {
	if _, err := os.Stat(b.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", b.path)
	}
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return b.open()
}

func (b *SQLiteBackend) Load() error {
	if b.db != nil {
		return nil
	}
	if _, err := os.Stat(b.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'teamfit init' first")
	}
	return b.open()
}

func (b *SQLiteBackend) open() error {
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	b.db = db
	return nil
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

func (b *SQLiteBackend) Path() string {
	return b.path
}

// DB exposes the underlying handle for diagnostics and backups.
func (b *SQLiteBackend) DB() *sql.DB {
	return b.db
}

func (b *SQLiteBackend) read(key string) ([]byte, bool, error) {
	if b.db == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}
	var data string
	err := b.db.QueryRow("SELECT data FROM collections WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s collection: %w", key, err)
	}
	return []byte(data), true, nil
}

func (b *SQLiteBackend) write(key string, data []byte) error {
	if b.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := b.db.Exec(
		"INSERT OR REPLACE INTO collections (key, data) VALUES (?, ?)",
		key, string(data),
	); err != nil {
		return fmt.Errorf("failed to write %s collection: %w", key, err)
	}
	return nil
}
