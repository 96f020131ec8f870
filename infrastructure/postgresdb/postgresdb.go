package postgresdb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	uniqueViolation       = "23505"
	undefinedTable        = "42P01"
	duplicateDatabase     = "42P04"
	insufficientPrivilege = "42501"
)

// DefaultPort is the only port the seeder connects to.
const DefaultPort = 5432

// Set of error variables for database operations.
var (
	ErrDBDuplicatedEntry     = errors.New("duplicated entry")
	ErrUndefinedTable        = errors.New("undefined table")
	ErrDuplicateDatabase     = errors.New("database already exists")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
)

// Options represents the exportable database configuration. The variable
// names match the ones used by the official postgres image.
type Options struct {
	Host     string `env:"POSTGRES_HOST" required:"true"`
	User     string `env:"POSTGRES_USER" required:"true"`
	Password string `env:"POSTGRES_PASSWORD" required:"true"`
	Database string `env:"POSTGRES_DB" required:"true"`

	// Port is fixed at DefaultPort outside of tests.
	Port uint16
}

// WithDatabase returns a copy of o pointed at another database on the same server.
func (o Options) WithDatabase(name string) Options {
	o.Database = name
	return o
}

// URL renders o as a postgres connection URL.
func (o Options) URL() string {
	port := int(o.Port)
	if port == 0 {
		port = DefaultPort
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.User, o.Password),
		Host:   net.JoinHostPort(o.Host, strconv.Itoa(port)),
		Path:   "/" + o.Database,
	}
	return u.String()
}

// String is URL with the password masked, safe for logs.
func (o Options) String() string {
	o.Password = "xxxxx"
	return o.URL()
}

// options holds the internal runtime configuration
type options struct {
	logger         *slog.Logger
	connectTimeout time.Duration
	logQueries     bool
}

// Option is a function that configures the connection options
type Option func(*options)

// WithLogger sets a custom logger for the connection
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// DefaultConnectTimeout bounds connect and ping when no timeout is given.
const DefaultConnectTimeout = 10 * time.Second

// WithConnectTimeout bounds connect and ping. Zero keeps the default.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.connectTimeout = timeout
	}
}

// WithLogQueries enables or disables query logging
func WithLogQueries(enable bool) Option {
	return func(o *options) {
		o.logQueries = enable
	}
}

// Connect opens a single connection. Every statement on it autocommits
// unless the caller opens a transaction.
func Connect(ctx context.Context, cfg Options, opts ...Option) (*pgx.Conn, error) {
	internalOpts := &options{
		connectTimeout: DefaultConnectTimeout,
	}
	for _, opt := range opts {
		opt(internalOpts)
	}
	if internalOpts.connectTimeout <= 0 {
		internalOpts.connectTimeout = DefaultConnectTimeout
	}

	if internalOpts.logger == nil {
		internalOpts.logger = slog.Default()
	}

	connConfig, err := pgx.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}
	if internalOpts.logQueries {
		connConfig.Tracer = NewMultiQueryTracer(NewLoggingQueryTracer(internalOpts.logger))
	}

	ctx, cancel := context.WithTimeout(ctx, internalOpts.connectTimeout)
	defer cancel()

	conn, err := pgx.ConnectConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg, err)
	}

	if err := conn.Ping(ctx); err != nil {
		conn.Close(context.Background())
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return conn, nil
}

// HandlePgError converts PostgreSQL errors to application errors. The
// original error stays in the chain.
func HandlePgError(err error) error {
	if err == nil {
		return nil
	}

	var pqerr *pgconn.PgError
	if errors.As(err, &pqerr) {
		switch pqerr.Code {
		case undefinedTable:
			return fmt.Errorf("%w: %w", ErrUndefinedTable, err)
		case uniqueViolation:
			return fmt.Errorf("%w: %w", ErrDBDuplicatedEntry, err)
		case duplicateDatabase:
			return fmt.Errorf("%w: %w", ErrDuplicateDatabase, err)
		case insufficientPrivilege:
			return fmt.Errorf("%w: %w", ErrInsufficientPrivilege, err)
		}
	}

	return err
}
