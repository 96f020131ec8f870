package postgresdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// EnsureDatabase creates the named database unless it already exists and
// reports whether it was created. conn must point at another database on
// the same server, usually the maintenance database.
//
// Existence is checked in pg_database first, so a role without CREATEDB
// can still bootstrap against a database that was provisioned for it. A
// duplicate_database error from a concurrent creator counts as existing;
// every other failure is returned.
func EnsureDatabase(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	ident, err := QuoteIdentifier(name)
	if err != nil {
		return false, fmt.Errorf("database name: %w", err)
	}

	exists, err := DatabaseExists(ctx, conn, name)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		err = HandlePgError(err)
		if errors.Is(err, ErrDuplicateDatabase) {
			return false, nil
		}
		return false, fmt.Errorf("create database %s: %w", ident, err)
	}

	return true, nil
}

// DatabaseExists reports whether the named database is present on the server.
func DatabaseExists(ctx context.Context, conn *pgx.Conn, name string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`

	var exists bool
	if err := conn.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("check database exists: %w", err)
	}
	return exists, nil
}
