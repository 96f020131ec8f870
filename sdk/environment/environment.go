// Package environment provides utilities for managing environment variables
// and configuration loading with support for prefixes and defaults.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LookupFunc resolves a single configuration key. It mirrors os.LookupEnv so
// tests can swap the process environment for a map.
type LookupFunc func(key string) (string, bool)

// OSLookup reads from the process environment.
var OSLookup LookupFunc = os.LookupEnv

// MapLookup returns a LookupFunc backed by a fixed set of values.
//
// Example:
//
//	lookup := MapLookup(map[string]string{"POSTGRES_HOST": "db"})
//	err := ParseEnvTagsWith(lookup, "", &cfg)
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

// LoadEnv loads environment variables from the given .env files, or from
// ".env" in the working directory when none are given. Missing files are
// not an error; variables already set in the process win over file values.
//
// Example:
//
//	if err := LoadEnv(); err != nil {
//	    log.Printf("reading .env: %v", err)
//	}
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("stat %s: %w", p, err)
		}
		existing = append(existing, p)
	}

	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// GetEnvKeyPrefix constructs a prefixed environment variable key by joining
// the prefix and key with an underscore. An empty prefix returns the key
// unchanged.
//
// Example:
//
//	GetEnvKeyPrefix("SEEDER", "LOG_LEVEL") // "SEEDER_LOG_LEVEL"
//	GetEnvKeyPrefix("", "POSTGRES_DB")     // "POSTGRES_DB"
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}
