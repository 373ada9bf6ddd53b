package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelParsing(t *testing.T) {
	tests := []struct {
		level   string
		message string
		want    bool
	}{
		{"debug", "debug enabled", true},
		{"info", "info default", true},
		{"error", "suppressed at error level", false},
		{"WARN", "case insensitive", false},
		{"bogus", "unknown means info", true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := New(&buf, tt.level)
		logger.Info(tt.message)

		if got := strings.Contains(buf.String(), tt.message); got != tt.want {
			t.Errorf("level %q: info logged = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "")
	logger.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
