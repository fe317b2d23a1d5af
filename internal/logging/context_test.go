package logging

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func TestFromContextPrefersStoredLogger(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithLogger(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatalf("expected stored logger")
	}
}

func TestFromContextFallsBack(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatalf("expected fallback logger")
	}
	if got := FromContext(context.Background(), nil); got != slog.Default() {
		t.Fatalf("expected slog default")
	}
}

func TestWithLoggerIgnoresNil(t *testing.T) {
	ctx := context.Background()
	if WithLogger(ctx, nil) != ctx {
		t.Fatalf("expected context unchanged for nil logger")
	}
}
