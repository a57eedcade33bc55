package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type fixedChecker struct {
	verbose bool
}

func (c *fixedChecker) IsVerbose() bool { return c.verbose }

func TestVerboseGating(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		logFn   func(l *Logger)
		want    bool
	}{
		{
			name:    "debug suppressed without verbose",
			verbose: false,
			logFn:   func(l *Logger) { l.Debug("hidden") },
			want:    false,
		},
		{
			name:    "debug written with verbose",
			verbose: true,
			logFn:   func(l *Logger) { l.Debug("visible") },
			want:    true,
		},
		{
			name:    "info suppressed without verbose",
			verbose: false,
			logFn:   func(l *Logger) { l.Info("hidden") },
			want:    false,
		},
		{
			name:    "warn always written",
			verbose: false,
			logFn:   func(l *Logger) { l.Warn("always") },
			want:    true,
		},
		{
			name:    "error always written",
			verbose: false,
			logFn:   func(l *Logger) { l.Error("always") },
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := New("test", &fixedChecker{verbose: tt.verbose}).WithWriter(&buf)

			tt.logFn(l)

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("wrote output = %v, want %v (buffer: %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogLineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New("poster", nil).WithWriter(&buf)

	l.Warn("lookup failed for %q", "Heat")

	line := buf.String()
	if !strings.Contains(line, "WARN [poster] lookup failed for \"Heat\"") {
		t.Errorf("unexpected log line: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("log line should end with newline")
	}
}

func TestFieldsRendering(t *testing.T) {
	var buf bytes.Buffer
	l := New("engine", nil).WithWriter(&buf)

	l.WarnWithFields("poster degraded", []Field{
		F("title", "Heat"),
		Count(3),
		Err(errors.New("timeout")),
	})

	line := buf.String()
	for _, want := range []string{"title=Heat", "count=3", "error=timeout"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %q", want, line)
		}
	}
}

func TestComponentFallback(t *testing.T) {
	var buf bytes.Buffer
	l := New("", nil).WithWriter(&buf)

	l.Error("boom")

	if !strings.Contains(buf.String(), "[main]") {
		t.Errorf("expected fallback component [main], got %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New("root", &fixedChecker{verbose: true}).WithWriter(&buf)

	child := l.WithComponent("catalog")
	child.Info("loaded")

	if !strings.Contains(buf.String(), "[catalog]") {
		t.Errorf("expected child component in output, got %q", buf.String())
	}
}

func TestCallbackChecker(t *testing.T) {
	var buf bytes.Buffer
	enabled := false
	l := NewWithCallback("cli", func() bool { return enabled }).WithWriter(&buf)

	l.Debug("first")
	if buf.Len() != 0 {
		t.Fatalf("debug should be suppressed, got %q", buf.String())
	}

	enabled = true
	l.Debug("second")
	if !strings.Contains(buf.String(), "second") {
		t.Errorf("debug should be written once enabled, got %q", buf.String())
	}
}
