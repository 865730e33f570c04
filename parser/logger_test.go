package parser

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNopLoggerDoesNothing(t *testing.T) {
	var l Logger = NopLogger{}

	// Must not panic, and With must keep returning a usable logger.
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	l = l.With("component", "test")
	l.Info("still fine")
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	var l Logger = SlogAdapter{L: slog.New(h)}

	l.Debug("loading", "path", "api.yaml")
	if out := buf.String(); !strings.Contains(out, "loading") || !strings.Contains(out, "api.yaml") {
		t.Errorf("debug output missing fields: %q", out)
	}

	buf.Reset()
	l.With("format", "json").Info("loaded")
	if out := buf.String(); !strings.Contains(out, "format=json") {
		t.Errorf("With attribute missing: %q", out)
	}
}

func TestLoaderUsesConfiguredLogger(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	l := New()
	l.Logger = SlogAdapter{L: slog.New(h)}
	if _, err := l.LoadBytes([]byte("openapi: 3.0.0\n"), SourceFormatYAML); err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	if out := buf.String(); !strings.Contains(out, "loaded document") {
		t.Errorf("expected load to be logged, got %q", out)
	}
}
