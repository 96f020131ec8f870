package seeder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jrazmi/elkseeder/core/seeder"
)

func TestSleep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := seeder.Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Expected Sleep to return promptly on cancel")
	}
}

func TestSleep_Elapses(t *testing.T) {
	if err := seeder.Sleep(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
}

func TestNoDelay(t *testing.T) {
	if err := seeder.NoDelay(context.Background(), time.Hour); err != nil {
		t.Fatalf("Expected nil, got %v", err)
	}
}
