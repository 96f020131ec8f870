package userspgxstore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jrazmi/elkseeder/core/repositories/usersrepo"
	"github.com/jrazmi/elkseeder/infrastructure/postgresdb"
	"github.com/jrazmi/elkseeder/schema"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// Conn is the subset of *pgx.Conn the store uses.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ========================================
// STORE
// ========================================

// Store provides database access for User on Postgres.
type Store struct {
	log  *logger.Logger
	conn Conn
}

// NewStore creates a new User store
func NewStore(log *logger.Logger, conn Conn) *Store {
	return &Store{
		log:  log,
		conn: conn,
	}
}

// CreateTable runs the embedded users DDL.
func (s *Store) CreateTable(ctx context.Context) error {
	if _, err := s.conn.Exec(ctx, schema.PostgresUsers); err != nil {
		return postgresdb.HandlePgError(err)
	}
	return nil
}

// Create inserts one user and lets the sequence assign its id.
func (s *Store) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	const query = `INSERT INTO users (first_name, last_name) VALUES ($1, $2) RETURNING id`

	user := usersrepo.User{FirstName: input.FirstName, LastName: input.LastName}
	if err := s.conn.QueryRow(ctx, query, input.FirstName, input.LastName).Scan(&user.ID); err != nil {
		return usersrepo.User{}, postgresdb.HandlePgError(err)
	}
	return user, nil
}

// List returns up to limit users ordered by id, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]usersrepo.User, error) {
	query := `SELECT id, first_name, last_name FROM users ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[usersrepo.User])
	if err != nil {
		return nil, postgresdb.HandlePgError(err)
	}
	return users, nil
}

// Count returns the number of rows in users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.conn.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, postgresdb.HandlePgError(err)
	}
	return n, nil
}
