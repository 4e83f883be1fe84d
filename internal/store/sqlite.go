package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // register sqlite driver
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);
`

// SQLiteBackend keeps the key-value namespace in a single-table SQLite
// file. Writes replace the whole value for a key, which is what gives
// the store its last-write-wins, atomic-per-key semantics.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens or creates the ledger database at the given path.
func OpenSQLite(dbPath string) (*SQLiteBackend, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close closes the underlying database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Get returns the bytes stored under key, or false when absent.
func (b *SQLiteBackend) Get(key string) ([]byte, bool) {
	var value string
	err := b.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

// Set overwrites the value stored under key.
func (b *SQLiteBackend) Set(key string, value []byte) error {
	_, err := b.db.Exec("INSERT OR REPLACE INTO records (key, value) VALUES (?, ?)",
		key, string(value))
	return err
}
