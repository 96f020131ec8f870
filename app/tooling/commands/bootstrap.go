package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jrazmi/elkseeder/core/seeder"
	"github.com/jrazmi/elkseeder/sdk/logger"
)

// Bootstrap creates the database and users table without generating rows.
func Bootstrap(ctx context.Context, log *logger.Logger, s *seeder.Seeder) error {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	log.InfoContext(ctx, "bootstrap started")
	if err := s.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	log.InfoContext(ctx, "bootstrap completed successfully")
	return nil
}
