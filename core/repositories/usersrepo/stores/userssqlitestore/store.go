package userssqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jrazmi/elkseeder/core/repositories/usersrepo"
	"github.com/jrazmi/elkseeder/infrastructure/sqlitedb"
	"github.com/jrazmi/elkseeder/schema"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// ========================================
// STORE
// ========================================

// Store provides database access for User on SQLite.
type Store struct {
	log *logger.Logger
	db  *sql.DB
}

// NewStore creates a new User store
func NewStore(log *logger.Logger, db *sql.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// CreateTable runs the embedded users DDL.
func (s *Store) CreateTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema.SQLiteUsers); err != nil {
		return fmt.Errorf("exec users ddl: %w", err)
	}
	return nil
}

// Create inserts one user and reads back the rowid SQLite assigned.
func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	const query = `INSERT INTO users (first_name, last_name) VALUES (?, ?)`

	res, err := s.db.ExecContext(ctx, query, input.FirstName, input.LastName)
	if err != nil {
		return usersrepo.User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return usersrepo.User{}, fmt.Errorf("last insert id: %w", err)
	}

	return usersrepo.User{
		ID:        id,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}, nil
}

// List returns up to limit users ordered by id, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]usersrepo.User, error) {
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name FROM users ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, sqlitedb.HandleError(err)
	}
	defer rows.Close()

	var users []usersrepo.User
	for rows.Next() {
		var u usersrepo.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Count returns the number of rows in users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, sqlitedb.HandleError(err)
	}
	return n, nil
}
