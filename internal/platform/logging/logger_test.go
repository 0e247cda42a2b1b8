package logging

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesFieldsAndMirrors(t *testing.T) {
	core, observed := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).With("component", "recompute")

	var (
		mu       sync.Mutex
		mirrored []string
		lastArgs []any
	)
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		mu.Lock()
		defer mu.Unlock()
		mirrored = append(mirrored, level.String()+":"+msg)
		lastArgs = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.ErrorContext(context.Background(), "recompute season failed", "season_id", "s1", "error", errors.New("boom"))

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	ctxMap := entries[0].ContextMap()
	if ctxMap["season_id"] != "s1" || ctxMap["component"] != "recompute" || ctxMap["error"] != "boom" {
		t.Fatalf("unexpected fields: %+v", ctxMap)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(mirrored) != 1 || mirrored[0] != "error:recompute season failed" {
		t.Fatalf("unexpected mirrored records: %+v", mirrored)
	}
	if len(lastArgs) != 6 || lastArgs[0] != "component" {
		t.Fatalf("mirror should receive base args first: %+v", lastArgs)
	}
}

func TestLogger_BelowLevelIsNotMirrored(t *testing.T) {
	core, observed := observer.New(LevelWarn)
	logger := FromZap(zap.New(core))

	called := false
	SetMirror(func(context.Context, Level, string, ...any) { called = true })
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("noise")
	if observed.Len() != 0 || called {
		t.Fatalf("debug record should be dropped, entries=%d mirrored=%v", observed.Len(), called)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"verbose": LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	if logger.With("k", "v") == nil {
		t.Fatalf("With on nil logger should return a usable logger")
	}
}
