// Package repositories holds the storage capabilities shared by entity
// repositories.
package repositories

import (
	"context"
)

// Creator inserts a new entity and returns it as stored.
type Creator[T any, C any] interface {
	Create(ctx context.Context, payload C) (T, error)
}

// Lister returns up to limit entities, newest first. A limit of zero or
// less returns every entity.
type Lister[T any] interface {
	List(ctx context.Context, limit int) ([]T, error)
}

// Counter reports how many entities are stored.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// TableCreator idempotently creates the backing table.
type TableCreator interface {
	CreateTable(ctx context.Context) error
}
