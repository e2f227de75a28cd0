package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "invalid level defaults to warn", level: "chatty"},
		{name: "empty level defaults to warn", level: ""},
		{name: "uppercase level", level: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, &bytes.Buffer{})
			if log == nil {
				t.Fatal("Expected logger to be non-nil")
			}
			if log.log == nil {
				t.Fatal("Expected internal log to be non-nil")
			}
		})
	}
}

func TestNew_NilOutput(t *testing.T) {
	log := New("info", nil)
	if log == nil {
		t.Fatal("Expected logger to be non-nil")
	}
}

func TestEntry_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Debug().
		Str("session", "s1").
		Int("cursor", 7).
		Uint("cycle", 3).
		Bool("cached", true).
		Dur("llm", 12*time.Millisecond).
		Msg("completion done")

	out := buf.String()
	for _, want := range []string{"completion done", "session", "s1", "cursor", "cycle", "cached", "llm"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, out)
		}
	}
}

func TestEntry_Err(t *testing.T) {
	var buf bytes.Buffer
	log := New("debug", &buf)

	log.Error().Err(errors.New("backend down")).Msg("completion failed")
	if !strings.Contains(buf.String(), "backend down") {
		t.Errorf("Expected error field in output, got: %s", buf.String())
	}

	// Nil errors add no field and must not panic.
	buf.Reset()
	log.Error().Err(nil).Msg("no cause")
	if !strings.Contains(buf.String(), "no cause") {
		t.Errorf("Expected message in output, got: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("hidden too")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below warn level, got: %s", buf.String())
	}

	log.Warn().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected warn output, got: %s", buf.String())
	}
}
