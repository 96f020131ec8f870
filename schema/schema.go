// Package schema contains the embedded table definitions, one file per
// storage engine. Every statement is idempotent.
package schema

import _ "embed"

// PostgresUsers creates the users table on Postgres.
//
//go:embed pgschema/users.sql
var PostgresUsers string

// SQLiteUsers creates the users table on SQLite. AUTOINCREMENT keeps ids
// strictly increasing even after deletes, matching SERIAL.
//
//go:embed sqliteschema/users.sql
var SQLiteUsers string
