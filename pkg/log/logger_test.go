package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesToSink(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("test")
	logger.Noticef("rendered %d rows", 3)

	out := buf.String()
	if !strings.Contains(out, "rendered 3 rows") {
		t.Errorf("Expected message in sink output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in sink output, got %q", out)
	}
}

func TestSetLevelFiltersMessages(t *testing.T) {
	tests := []struct {
		name      string
		level     Level
		log       func(Logger)
		shouldLog bool
	}{
		{"info hidden at notice", Notice, func(l Logger) { l.Info("progress") }, false},
		{"info shown at info", Info, func(l Logger) { l.Info("progress") }, true},
		{"debug hidden at info", Info, func(l Logger) { l.Debug("progress") }, false},
		{"debug shown at debug", Debug, func(l Logger) { l.Debug("progress") }, true},
		{"warning hidden at error", Error, func(l Logger) { l.Warning("progress") }, false},
		{"error shown at warning", Warning, func(l Logger) { l.Error("progress") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetSink(&buf)
			defer SetSink(os.Stderr)
			defer SetLevel(Notice)
			SetLevel(tt.level)

			tt.log(New("levels"))

			if logged := strings.Contains(buf.String(), "progress"); logged != tt.shouldLog {
				t.Errorf("Expected logged=%t, got output %q", tt.shouldLog, buf.String())
			}
		})
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Debug)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	if GetLevel() != Debug {
		t.Errorf("Expected level Debug after SetSink, got %d", GetLevel())
	}

	New("sink").Debug("still verbose")
	if !strings.Contains(buf.String(), "still verbose") {
		t.Errorf("Expected debug message after switching sinks, got %q", buf.String())
	}
}
