package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"error", LogLevelError},
		{"nonsense", LogLevelInfo},
		{"", LogLevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LogLevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown warn")
	l.Error("shown error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "shown warn") || !strings.Contains(out, "shown error") {
		t.Errorf("missing messages: %q", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("missing level tags: %q", out)
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LogLevelDebug).WithComponent("input")

	l.Debug("decoded %d bytes", 7)

	out := buf.String()
	if !strings.Contains(out, "decoded 7 bytes") {
		t.Errorf("formatting lost: %q", out)
	}
	if !strings.Contains(out, "component=input") {
		t.Errorf("field missing: %q", out)
	}
}

func TestLoggerWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&buf, LogLevelDebug)
	_ = parent.WithField("child", true)

	parent.Info("plain")
	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestNullLogger(t *testing.T) {
	// Must not panic despite having no output writer.
	NullLogger.Error("dropped")
}

func TestFileLoggerEmptyPathDisables(t *testing.T) {
	l, err := NewFileLogger("", LogLevelDebug)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	if l != NullLogger {
		t.Error("empty path should return the null logger")
	}
}
