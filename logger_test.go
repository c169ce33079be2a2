package fontatlas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	entries := []Entry{newEntry(letterFont(), 100)}
	if _, err := Generate(entries); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "font parsed") {
		t.Errorf("expected per-font debug output, got %q", out)
	}
	if !strings.Contains(out, "atlas generated") {
		t.Errorf("expected completion output, got %q", out)
	}
}

func TestSetLogger_NilRestoresSilence(t *testing.T) {
	SetLogger(nil)
	l := Logger()
	if l == nil {
		t.Fatal("Logger returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger must discard all records")
	}
}
