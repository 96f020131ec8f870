package userspgxstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/elkseeder/core/repositories/usersrepo"
	"github.com/jrazmi/elkseeder/infrastructure/postgresdb"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// Backend bootstraps a Postgres server. The database named in the
// connection options is only used to create the target database; all
// user traffic goes over one long-lived connection to the target.
type Backend struct {
	log    *logger.Logger
	cfg    postgresdb.Options
	target string
	opts   []postgresdb.Option

	conn  *pgx.Conn
	store *Store
}

// NewBackend creates a Backend for the target database on the server
// described by cfg.
func NewBackend(log *logger.Logger, cfg postgresdb.Options, target string, opts ...postgresdb.Option) *Backend {
	return &Backend{
		log:    log,
		cfg:    cfg,
		target: target,
		opts:   opts,
	}
}

// EnsureDatabase creates the target database over a short-lived
// connection to the maintenance database.
func (b *Backend) EnsureDatabase(ctx context.Context) (bool, error) {
	conn, err := postgresdb.Connect(ctx, b.cfg, b.opts...)
	if err != nil {
		return false, err
	}
	defer conn.Close(context.WithoutCancel(ctx))

	return postgresdb.EnsureDatabase(ctx, conn, b.target)
}

// DatabaseExists checks pg_database over a short-lived maintenance
// connection.
func (b *Backend) DatabaseExists(ctx context.Context) (bool, error) {
	conn, err := postgresdb.Connect(ctx, b.cfg, b.opts...)
	if err != nil {
		return false, err
	}
	defer conn.Close(context.WithoutCancel(ctx))

	return postgresdb.DatabaseExists(ctx, conn, b.target)
}

// OpenStore connects to the target database once.
func (b *Backend) OpenStore(ctx context.Context) (usersrepo.Storer, error) {
	if b.store != nil {
		return b.store, nil
	}

	conn, err := postgresdb.Connect(ctx, b.cfg.WithDatabase(b.target), b.opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", b.target, err)
	}

	b.conn = conn
	b.store = NewStore(b.log, conn)
	return b.store, nil
}

// Close closes the target connection if one was opened.
func (b *Backend) Close(ctx context.Context) error {
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close(ctx)
	b.conn, b.store = nil, nil
	return err
}
