// Package localstore is the durable client-side storage: a small
// sqlite key/value table holding the persisted session keys, the Go
// counterpart of the browser's localStorage.
package localstore

import (
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS portal_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Open opens (creating if needed) the local state database at path.
func Open(path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, errors.Wrap(err, "creating storage directory")
		}
	}
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening local store")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}
	return db, nil
}
