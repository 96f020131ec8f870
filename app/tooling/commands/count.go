package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jrazmi/elkseeder/core/seeder"
	"github.com/jrazmi/elkseeder/infrastructure/postgresdb"
	"github.com/jrazmi/elkseeder/infrastructure/sqlitedb"
)

// Count prints how many users are stored and the most recent ones. It only
// reads: a missing database or table is reported, never created.
func Count(ctx context.Context, w io.Writer, args []string, s *seeder.Seeder) error {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	fs.SetOutput(w)
	last := fs.Int("last", 5, "number of most recent users to print")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ErrHelp
		}
		return err
	}

	if err := s.Open(ctx); err != nil {
		if errors.Is(err, seeder.ErrDatabaseNotFound) {
			return fmt.Errorf("%w: %w", ErrNotBootstrapped, err)
		}
		return err
	}
	repo := s.Repository()

	n, err := repo.Count(ctx)
	if err != nil {
		if errors.Is(err, postgresdb.ErrUndefinedTable) || errors.Is(err, sqlitedb.ErrUndefinedTable) {
			return fmt.Errorf("%w: %w", ErrNotBootstrapped, err)
		}
		return err
	}
	fmt.Fprintf(w, "users: %d\n", n)

	if *last <= 0 || n == 0 {
		return nil
	}

	users, err := repo.List(ctx, *last)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFIRST\tLAST")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.ID, u.FirstName, u.LastName)
	}
	return tw.Flush()
}
