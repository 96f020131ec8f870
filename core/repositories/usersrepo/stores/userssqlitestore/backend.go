package userssqlitestore

import (
	"context"
	"database/sql"

	"github.com/jrazmi/elkseeder/core/repositories/usersrepo"
	"github.com/jrazmi/elkseeder/infrastructure/sqlitedb"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// Backend stores users in a single SQLite file, which stands in for the
// target database.
type Backend struct {
	log  *logger.Logger
	path string

	db    *sql.DB
	store *Store
}

// NewBackend creates a Backend for the database file at path, or an
// in-memory database for sqlitedb.Memory.
func NewBackend(log *logger.Logger, path string) *Backend {
	return &Backend{
		log:  log,
		path: path,
	}
}

// EnsureDatabase opens the file, creating it if missing. It reports true
// only when this call created it.
func (b *Backend) EnsureDatabase(ctx context.Context) (bool, error) {
	if b.db != nil {
		return false, nil
	}

	exists, err := sqlitedb.Exists(b.path)
	if err != nil {
		return false, err
	}

	db, err := sqlitedb.Open(ctx, b.path)
	if err != nil {
		return false, err
	}
	b.db = db
	return !exists, nil
}

// DatabaseExists reports whether the file is present or already open.
func (b *Backend) DatabaseExists(ctx context.Context) (bool, error) {
	if b.db != nil {
		return true, nil
	}
	return sqlitedb.Exists(b.path)
}

// OpenStore returns the store for the opened database.
func (b *Backend) OpenStore(ctx context.Context) (usersrepo.Storer, error) {
	if b.store != nil {
		return b.store, nil
	}
	if b.db == nil {
		if _, err := b.EnsureDatabase(ctx); err != nil {
			return nil, err
		}
	}
	b.store = NewStore(b.log, b.db)
	return b.store, nil
}

// Close closes the database. In-memory contents are lost.
func (b *Backend) Close(ctx context.Context) error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db, b.store = nil, nil
	return err
}
