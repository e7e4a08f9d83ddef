package internal

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)

	logger := NewLogger(LogLevelInfo)
	logger.Trace("t")
	logger.Debug("d")
	logger.Info("i")
	logger.Error("e")

	out := buf.String()
	if strings.Contains(out, "[TRACE]") || strings.Contains(out, "[DEBUG]") {
		t.Errorf("messages above the level were emitted: %q", out)
	}
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "[ERROR]") {
		t.Errorf("messages at or below the level were dropped: %q", out)
	}

	buf.Reset()
	logger.SetLevel(LogLevelTrace)
	logger.Trace("finest detail")
	if !strings.Contains(buf.String(), "[TRACE] finest detail") {
		t.Errorf("trace level should emit trace messages: %q", buf.String())
	}
}

func TestNewDefaultLogger_EnvLevels(t *testing.T) {
	tests := []struct {
		env  string
		want LogLevel
	}{
		{"", LogLevelInfo},
		{"ERROR", LogLevelError},
		{"WARN", LogLevelWarn},
		{"DEBUG", LogLevelDebug},
		{"TRACE", LogLevelTrace},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := NewDefaultLogger().level; got != tt.want {
			t.Errorf("LOG_LEVEL=%q: level = %d, want %d", tt.env, got, tt.want)
		}
	}
}
