package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrazmi/elkseeder/app/tooling/commands"
	"github.com/jrazmi/elkseeder/core/repositories/usersrepo/stores/userssqlitestore"
	"github.com/jrazmi/elkseeder/core/seeder"
	"github.com/jrazmi/elkseeder/infrastructure/sqlitedb"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

func newSeeder(t *testing.T) *seeder.Seeder {
	t.Helper()
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	s := seeder.New(log, userssqlitestore.NewBackend(log, sqlitedb.Memory), seeder.WithPicker(seeder.NewSeededPicker(3, 4)))
	t.Cleanup(func() { s.Close(context.Background()) })
	return s
}

func TestBootstrapThenCount(t *testing.T) {
	ctx := context.Background()
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	s := newSeeder(t)

	if err := commands.Bootstrap(ctx, log, s); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	var buf bytes.Buffer
	if err := commands.Count(ctx, &buf, nil, s); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if got := buf.String(); got != "users: 0\n" {
		t.Errorf("Expected empty count, got %q", got)
	}

	var inserted []string
	for range 3 {
		u, err := s.Step(ctx)
		if err != nil {
			t.Fatal(err)
		}
		inserted = append(inserted, u.FirstName)
	}

	buf.Reset()
	if err := commands.Count(ctx, &buf, []string{"-last", "2"}, s); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "users: 3\n") {
		t.Errorf("Expected 3 users, got %q", out)
	}
	if lines := strings.Count(out, "\n"); lines != 4 {
		t.Errorf("Expected header plus 2 rows, got %d lines:\n%s", lines, out)
	}
	if !strings.Contains(out, inserted[2]) {
		t.Errorf("Expected newest user %s in output:\n%s", inserted[2], out)
	}
}

func TestCount_Help(t *testing.T) {
	var buf bytes.Buffer
	err := commands.Count(context.Background(), &buf, []string{"-h"}, newSeeder(t))
	if !errors.Is(err, commands.ErrHelp) {
		t.Fatalf("Expected ErrHelp, got %v", err)
	}
}

func TestCount_MissingDatabase(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")
	path := filepath.Join(dir, "elk.db")

	log := logger.NewDefault(logger.WithOutput(io.Discard))
	s := seeder.New(log, userssqlitestore.NewBackend(log, path))
	defer s.Close(ctx)

	var buf bytes.Buffer
	err := commands.Count(ctx, &buf, nil, s)
	if !errors.Is(err, commands.ErrNotBootstrapped) || !errors.Is(err, seeder.ErrDatabaseNotFound) {
		t.Fatalf("Expected not bootstrapped error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected count to leave %s absent, stat: %v", dir, err)
	}
}

func TestCount_MissingTable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "elk.db")

	db, err := sqlitedb.Open(ctx, path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	db.Close()

	log := logger.NewDefault(logger.WithOutput(io.Discard))
	s := seeder.New(log, userssqlitestore.NewBackend(log, path))
	defer s.Close(ctx)

	err = commands.Count(ctx, io.Discard, nil, s)
	if !errors.Is(err, commands.ErrNotBootstrapped) || !errors.Is(err, sqlitedb.ErrUndefinedTable) {
		t.Fatalf("Expected missing table error, got %v", err)
	}
}
