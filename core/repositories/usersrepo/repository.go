package usersrepo

import (
	"context"
	"fmt"

	"github.com/jrazmi/elkseeder/core/repositories"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// ========================================
// STORER INTERFACE
// ========================================

// Storer defines the complete data storage interface for User. Every call
// autocommits.
type Storer interface {
	repositories.TableCreator
	repositories.Creator[User, CreateUser]
	repositories.Lister[User]
	repositories.Counter
}

// ========================================
// REPOSITORY
// ========================================

// Repository provides access to user storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new User repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// CreateTable ensures the users table exists.
func (r *Repository) CreateTable(ctx context.Context) error {
	if err := r.storer.CreateTable(ctx); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// Create inserts one user and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, input CreateUser) (User, error) {
	user, err := r.storer.Create(ctx, input)
	if err != nil {
		return User{}, fmt.Errorf("create user %s %s: %w", input.FirstName, input.LastName, err)
	}
	r.log.DebugContext(ctx, "created user", "id", user.ID)
	return user, nil
}

// List returns up to limit users, newest first.
func (r *Repository) List(ctx context.Context, limit int) ([]User, error) {
	users, err := r.storer.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Count returns the number of stored users.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	n, err := r.storer.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
