package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jrazmi/elkseeder/sdk/logger"
)

type ctxKey struct{}

func traceFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}

func TestNewDefault_TextLine(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(logger.WithOutput(&buf))

	log.InfoContext(context.Background(), "inserted user", "first_name", "John", "last_name", "Smith")

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("Expected exactly one line, got %q", out)
	}
	for _, want := range []string{"level=INFO", `msg="inserted user"`, "first_name=John", "last_name=Smith"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(
		logger.WithOutput(&buf),
		logger.WithFormat("json"),
		logger.WithTraceID(traceFromContext),
	)

	ctx := context.WithValue(context.Background(), ctxKey{}, "run-1")
	log.With("component", "seeder").InfoContext(ctx, "table ready")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Expected json record: %v", err)
	}
	if rec["trace_id"] != "run-1" {
		t.Errorf("Expected trace_id run-1, got %v", rec["trace_id"])
	}
	if rec["component"] != "seeder" {
		t.Errorf("Expected component seeder, got %v", rec["component"])
	}

	buf.Reset()
	log.InfoContext(context.Background(), "no trace")
	if strings.Contains(buf.String(), "trace_id") {
		t.Errorf("Expected no trace_id without one in context, got %s", buf.String())
	}
}

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewDefault(logger.WithOutput(&buf), logger.WithLevel("warn"))

	log.InfoContext(context.Background(), "hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered, got %q", buf.String())
	}

	log.ErrorContextf(context.Background(), "insert failed: %s", "boom")
	if !strings.Contains(buf.String(), "insert failed: boom") {
		t.Errorf("Expected formatted error, got %q", buf.String())
	}
}
