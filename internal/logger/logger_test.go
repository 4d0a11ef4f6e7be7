package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tt := range tests {
		log, err := New(tt.level, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("New(%q) error = %v", tt.level, err)
		}
		if got := log.GetLevel(); got != tt.want {
			t.Errorf("New(%q) level = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New("chatty", &bytes.Buffer{}); err == nil {
		t.Error("New(chatty) error = nil, want error")
	}
}

func TestNew_ConsoleOutputWithoutColor(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New("info", buf)
	if err != nil {
		t.Fatal(err)
	}
	log.Info().Str("file", "a.csv").Msg("loaded")
	log.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, "loaded") || !strings.Contains(out, "file=a.csv") {
		t.Errorf("output = %q, want message and field", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("output = %q, debug line should be filtered", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output = %q, want no ANSI colors for a buffer", out)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("expected log output from retrieved logger")
	}
}

func TestFromContext_DefaultIsSilent(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("default level = %v, want disabled", log.GetLevel())
	}
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := WithFields(NewWithWriter(buf), map[string]any{"run": "abc", "files": 2})
	log.Info().Msg("x")

	out := buf.String()
	if !strings.Contains(out, `"run":"abc"`) || !strings.Contains(out, `"files":2`) {
		t.Errorf("output = %q, want both fields", out)
	}
}
