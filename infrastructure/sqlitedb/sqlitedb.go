// Package sqlitedb opens SQLite databases through the pure Go
// modernc.org/sqlite driver.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Memory opens a private in-memory database.
const Memory = ":memory:"

// ErrUndefinedTable marks a query against a table that was never created.
var ErrUndefinedTable = errors.New("undefined table")

// Options represents the exportable SQLite configuration
type Options struct {
	Path string `env:"SQLITE_PATH" default:"data/elk.db"`
}

// IsMemory reports whether path names an in-memory database.
func IsMemory(path string) bool {
	return path == Memory || strings.Contains(path, "mode=memory")
}

// Exists reports whether the database file at path is already present.
// In-memory databases never exist before they are opened.
func Exists(path string) (bool, error) {
	if IsMemory(path) {
		return false, nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// Open creates the parent directory if needed and opens path with a single
// connection, so an in-memory database survives between statements.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if !IsMemory(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("ensure data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// HandleError converts SQLite errors to application errors. The original
// error stays in the chain.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %w", ErrUndefinedTable, err)
	}
	return err
}
