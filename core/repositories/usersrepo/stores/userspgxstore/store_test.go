package userspgxstore_test

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jrazmi/elkseeder/core/repositories/usersrepo"
	"github.com/jrazmi/elkseeder/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/jrazmi/elkseeder/infrastructure/postgresdb"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// testOptions points at a throwaway server, for example:
//
//	docker run --rm -p 5432:5432 -e POSTGRES_PASSWORD=1234 postgres
//	POSTGRES_TEST_HOST=localhost POSTGRES_TEST_PASSWORD=1234 go test ./...
func testOptions(t *testing.T) postgresdb.Options {
	t.Helper()

	host := os.Getenv("POSTGRES_TEST_HOST")
	if host == "" {
		t.Skip("POSTGRES_TEST_HOST not set, skipping postgres integration test")
	}

	opts := postgresdb.Options{
		Host:     host,
		User:     "postgres",
		Password: os.Getenv("POSTGRES_TEST_PASSWORD"),
		Database: "postgres",
	}
	if u := os.Getenv("POSTGRES_TEST_USER"); u != "" {
		opts.User = u
	}
	return opts
}

func newTestBackend(t *testing.T) (*userspgxstore.Backend, postgresdb.Options) {
	t.Helper()
	opts := testOptions(t)
	target := fmt.Sprintf("elkseeder_test_%d", rand.Uint32())

	log := logger.NewDefault(logger.WithOutput(io.Discard))
	b := userspgxstore.NewBackend(log, opts, target)

	t.Cleanup(func() {
		ctx := context.Background()
		b.Close(ctx)

		conn, err := postgresdb.Connect(ctx, opts)
		if err != nil {
			t.Logf("cleanup connect: %v", err)
			return
		}
		defer conn.Close(ctx)
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+target); err != nil {
			t.Logf("cleanup drop %s: %v", target, err)
		}
	})
	return b, opts.WithDatabase(target)
}

func TestBackend_Bootstrap(t *testing.T) {
	ctx := context.Background()
	b, targetOpts := newTestBackend(t)

	created, err := b.EnsureDatabase(ctx)
	if err != nil {
		t.Fatalf("ensure database failed: %v", err)
	}
	if !created {
		t.Error("Expected database to be created on first call")
	}

	created, err = b.EnsureDatabase(ctx)
	if err != nil {
		t.Fatalf("second ensure database failed: %v", err)
	}
	if created {
		t.Error("Expected second call to find the existing database")
	}

	store, err := b.OpenStore(ctx)
	if err != nil {
		t.Fatalf("open store failed: %v", err)
	}
	for range 2 {
		if err := store.CreateTable(ctx); err != nil {
			t.Fatalf("create table failed: %v", err)
		}
	}

	again, err := b.OpenStore(ctx)
	if err != nil || again != store {
		t.Errorf("Expected OpenStore to reuse the store, got %v (%v)", again, err)
	}

	conn, err := postgresdb.Connect(ctx, targetOpts)
	if err != nil {
		t.Fatalf("connect to target failed: %v", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, `
		SELECT column_name, data_type, column_default IS NOT NULL
		FROM information_schema.columns
		WHERE table_name = 'users'
		ORDER BY ordinal_position`)
	if err != nil {
		t.Fatal(err)
	}
	type column struct {
		Name       string
		Type       string
		HasDefault bool
	}
	cols, err := pgx.CollectRows(rows, pgx.RowToStructByPos[column])
	if err != nil {
		t.Fatal(err)
	}
	want := []column{
		{Name: "id", Type: "integer", HasDefault: true},
		{Name: "first_name", Type: "text"},
		{Name: "last_name", Type: "text"},
	}
	if len(cols) != len(want) {
		t.Fatalf("Expected %d columns, got %+v", len(want), cols)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("column %d: expected %+v, got %+v", i, want[i], cols[i])
		}
	}
}

func TestStore_CreateListCount(t *testing.T) {
	ctx := context.Background()
	b, _ := newTestBackend(t)

	if _, err := b.EnsureDatabase(ctx); err != nil {
		t.Fatalf("ensure database failed: %v", err)
	}
	store, err := b.OpenStore(ctx)
	if err != nil {
		t.Fatalf("open store failed: %v", err)
	}
	if err := store.CreateTable(ctx); err != nil {
		t.Fatalf("create table failed: %v", err)
	}

	first, err := store.Create(ctx, usersrepo.CreateUser{FirstName: "John", LastName: "Smith"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := store.Create(ctx, usersrepo.CreateUser{FirstName: "Emma", LastName: "Moore"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("Expected increasing ids, got %d then %d", first.ID, second.ID)
	}

	n, err := store.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("Expected 2 rows, got %d (%v)", n, err)
	}

	latest, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(latest) != 1 || latest[0] != second {
		t.Errorf("Expected [%+v], got %+v", second, latest)
	}
}
