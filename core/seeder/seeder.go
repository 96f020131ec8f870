// Package seeder bootstraps the users database and then fills it with
// synthetic users, one row per interval, until it is stopped or an insert
// fails.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrazmi/elkseeder/core/repositories/usersrepo"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// DatabaseName is the database every profile bootstraps.
const DatabaseName = "elk"

// DefaultInterval is the pause between two inserts.
const DefaultInterval = 5 * time.Second

// ErrNotBootstrapped is returned by Step and GenerateForever before a
// successful Bootstrap.
var ErrNotBootstrapped = errors.New("seeder is not bootstrapped")

// ErrDatabaseNotFound is returned by Open when the target database has
// not been bootstrapped yet.
var ErrDatabaseNotFound = errors.New("database not found")

// State is the seeder lifecycle position.
type State int

const (
	StateBootstrapping State = iota
	StateGenerating
)

func (s State) String() string {
	switch s {
	case StateBootstrapping:
		return "bootstrapping"
	case StateGenerating:
		return "generating"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Backend owns the storage engine connections.
type Backend interface {
	// EnsureDatabase creates the target database if it is missing and
	// reports whether it did.
	EnsureDatabase(ctx context.Context) (bool, error)

	// DatabaseExists reports whether the target database is present
	// without creating anything.
	DatabaseExists(ctx context.Context) (bool, error)

	// OpenStore returns a store bound to the target database. Repeated
	// calls return the same store and connection.
	OpenStore(ctx context.Context) (usersrepo.Storer, error)

	Close(ctx context.Context) error
}

// options holds the internal runtime configuration
type options struct {
	interval time.Duration
	delay    Delay
	picker   *Picker
}

// Option is a function that configures the seeder
type Option func(*options)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(o *options) {
		o.interval = d
	}
}

// WithDelay replaces the wait between inserts.
func WithDelay(delay Delay) Option {
	return func(o *options) {
		o.delay = delay
	}
}

// WithPicker replaces the name picker, usually with a seeded one.
func WithPicker(p *Picker) Option {
	return func(o *options) {
		o.picker = p
	}
}

// Seeder runs the bootstrap then generate lifecycle against one Backend.
// It is not safe for concurrent use.
type Seeder struct {
	log      *logger.Logger
	backend  Backend
	interval time.Duration
	delay    Delay
	picker   *Picker

	state State
	repo  *usersrepo.Repository
}

// New creates a Seeder in the bootstrapping state.
func New(log *logger.Logger, backend Backend, opts ...Option) *Seeder {
	o := &options{
		interval: DefaultInterval,
		delay:    Sleep,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.picker == nil {
		o.picker = NewPicker()
	}

	return &Seeder{
		log:      log,
		backend:  backend,
		interval: o.interval,
		delay:    o.delay,
		picker:   o.picker,
		state:    StateBootstrapping,
	}
}

// State reports where the seeder is in its lifecycle.
func (s *Seeder) State() State {
	return s.state
}

// Bootstrap ensures the target database and the users table exist. Each
// step commits on its own; running it again is a no-op.
func (s *Seeder) Bootstrap(ctx context.Context) error {
	created, err := s.backend.EnsureDatabase(ctx)
	if err != nil {
		return fmt.Errorf("ensure database: %w", err)
	}
	if created {
		s.log.InfoContext(ctx, "database created", "database", DatabaseName)
	} else {
		s.log.InfoContext(ctx, "database already exists", "database", DatabaseName)
	}

	if s.repo == nil {
		store, err := s.backend.OpenStore(ctx)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		s.repo = usersrepo.NewRepository(s.log, store)
	}

	if err := s.repo.CreateTable(ctx); err != nil {
		return err
	}
	s.log.InfoContext(ctx, "table ready", "table", "users")

	s.state = StateGenerating
	return nil
}

// Open attaches to an existing target database for reading. Unlike
// Bootstrap it creates nothing and leaves the seeder in the bootstrapping
// state, so Step still refuses to insert.
func (s *Seeder) Open(ctx context.Context) error {
	if s.repo != nil {
		return nil
	}

	exists, err := s.backend.DatabaseExists(ctx)
	if err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrDatabaseNotFound, DatabaseName)
	}

	store, err := s.backend.OpenStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	s.repo = usersrepo.NewRepository(s.log, store)
	return nil
}

// Step inserts one random user and logs it. It does not wait.
func (s *Seeder) Step(ctx context.Context) (usersrepo.User, error) {
	if s.state != StateGenerating {
		return usersrepo.User{}, ErrNotBootstrapped
	}

	first, last := s.picker.Pick()
	user, err := s.repo.Create(ctx, usersrepo.CreateUser{FirstName: first, LastName: last})
	if err != nil {
		return usersrepo.User{}, err
	}

	s.log.InfoContext(ctx, "inserted: "+user.FullName(), "id", user.ID)
	return user, nil
}

// GenerateForever inserts a user, waits the interval and repeats. It only
// returns when an insert fails or the delay reports an error, which for
// the default delay means ctx was cancelled.
func (s *Seeder) GenerateForever(ctx context.Context) error {
	if s.state != StateGenerating {
		return ErrNotBootstrapped
	}

	for {
		if _, err := s.Step(ctx); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if err := s.delay(ctx, s.interval); err != nil {
			return err
		}
	}
}

// Repository exposes the users repository after Bootstrap or Open, nil before.
func (s *Seeder) Repository() *usersrepo.Repository {
	return s.repo
}

// Close releases the backend connection.
func (s *Seeder) Close(ctx context.Context) error {
	return s.backend.Close(ctx)
}
