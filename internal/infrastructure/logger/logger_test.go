package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer

	log := zerolog.New(&buf).Level(parseLevel("info")).With().Timestamp().Logger()
	log.Info().Msg("hello")

	output := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(output), "{") {
		t.Fatalf("expected json output to start with '{', got %q", output)
	}
	if !strings.Contains(output, `"message":"hello"`) {
		t.Fatalf("expected message field, got %q", output)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log := zerolog.New(&buf).Level(parseLevel("error"))
	log.Info().Msg("dropped")

	if buf.Len() != 0 {
		t.Fatalf("info log should be dropped at error level, got %q", buf.String())
	}
}
