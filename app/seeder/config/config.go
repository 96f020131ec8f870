// Package config resolves the seeder configuration. Two profiles exist and
// are chosen at build time: the default build reads the environment, and
// the "embedded" build tag compiles in fixed literal settings.
//
//	go build ./app/seeder                 # environment profile
//	go build -tags embedded ./app/seeder  # embedded profile
package config

import (
	"fmt"
	"time"

	"github.com/jrazmi/elkseeder/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/jrazmi/elkseeder/core/repositories/usersrepo/stores/userssqlitestore"
	"github.com/jrazmi/elkseeder/core/seeder"
	"github.com/jrazmi/elkseeder/infrastructure/postgresdb"
	"github.com/jrazmi/elkseeder/infrastructure/sqlitedb"
	"github.com/jrazmi/elkseeder/sdk/environment"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// Prefix namespaces the seeder's own variables. The POSTGRES_* variables
// are read without it.
const Prefix = "SEEDER"

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Seeder holds settings that are not tied to one storage engine.
type Seeder struct {
	Driver         string        `env:"DRIVER" default:"postgres"`
	LogQueries     bool          `env:"LOG_QUERIES"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" default:"10s"`
}

// Config is the resolved configuration for one process.
type Config struct {
	Profile  string
	Seeder   Seeder
	Postgres postgresdb.Options
	SQLite   sqlitedb.Options
	Log      logger.Options
}

// Load resolves the configuration with the profile compiled into the binary.
func Load() (Config, error) {
	return load()
}

// Embedded returns the literal settings of the embedded profile.
func Embedded() Config {
	return Config{
		Profile: "embedded",
		Seeder: Seeder{
			Driver:         DriverPostgres,
			ConnectTimeout: postgresdb.DefaultConnectTimeout,
		},
		Postgres: postgresdb.Options{
			Host:     "localhost",
			User:     "postgres",
			Password: "1234",
			Database: "postgres",
		},
		SQLite: sqlitedb.Options{
			Path: "data/elk.db",
		},
		Log: logger.Options{
			Level:      "INFO",
			Output:     "STDOUT",
			Format:     "text",
			TimeFormat: "RFC3339",
		},
	}
}

// FromLookup resolves the environment profile through lookup.
func FromLookup(lookup environment.LookupFunc) (Config, error) {
	cfg := Config{Profile: "env"}

	if err := environment.ParseEnvTagsWith(lookup, Prefix, &cfg.Seeder); err != nil {
		return Config{}, fmt.Errorf("parsing seeder config: %w", err)
	}
	if err := environment.ParseEnvTagsWith(lookup, Prefix, &cfg.Log); err != nil {
		return Config{}, fmt.Errorf("parsing logger config: %w", err)
	}

	switch cfg.Seeder.Driver {
	case DriverPostgres:
		if err := environment.ParseEnvTagsWith(lookup, "", &cfg.Postgres); err != nil {
			return Config{}, fmt.Errorf("parsing database config: %w", err)
		}
	case DriverSQLite:
		if err := environment.ParseEnvTagsWith(lookup, Prefix, &cfg.SQLite); err != nil {
			return Config{}, fmt.Errorf("parsing sqlite config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unknown driver %q, want %s or %s", cfg.Seeder.Driver, DriverPostgres, DriverSQLite)
	}

	return cfg, nil
}

// Backend builds the storage backend for the configured driver.
func (c Config) Backend(log *logger.Logger) (seeder.Backend, error) {
	switch c.Seeder.Driver {
	case DriverPostgres:
		return userspgxstore.NewBackend(log, c.Postgres, seeder.DatabaseName,
			postgresdb.WithLogger(log.Logger),
			postgresdb.WithLogQueries(c.Seeder.LogQueries),
			postgresdb.WithConnectTimeout(c.Seeder.ConnectTimeout),
		), nil
	case DriverSQLite:
		return userssqlitestore.NewBackend(log, c.SQLite.Path), nil
	default:
		return nil, fmt.Errorf("unknown driver %q", c.Seeder.Driver)
	}
}

// Target names the database being seeded, for logs.
func (c Config) Target() string {
	if c.Seeder.Driver == DriverSQLite {
		return c.SQLite.Path
	}
	return c.Postgres.WithDatabase(seeder.DatabaseName).String()
}
