package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLevel(t *testing.T) {
	if got := New("debug", false).GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %s", got)
	}
	if got := New("shouting", true).GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %s", got)
	}
	if got := New("", false).GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected info for empty level, got %s", got)
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)
	log.Info().Msg("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Fatalf("expected output to contain message, got %q", buf.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))
	log := FromContext(ctx)
	log.Info().Msg("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Fatalf("expected logger from context to write, got %q", buf.String())
	}
}

func TestFromContextDefault(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %s", log.GetLevel())
	}
}
