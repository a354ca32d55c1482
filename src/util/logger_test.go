package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bensonms/ado-auto-review/src/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  LogLevel
	}{
		{"debug", "debug", LogLevelDebug},
		{"info", "info", LogLevelInfo},
		{"warn", "warn", LogLevelWarn},
		{"error", "error", LogLevelError},
		{"empty falls back to info", "", LogLevelInfo},
		{"unknown falls back to info", "verbose", LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.input))
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: LogLevelWarn, output: &buf}

	l.Debug("hidden detail")
	l.Info("hidden status")
	l.Warn("file cap reached (%d)", 200)
	l.Error("fetch failed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] file cap reached (200)")
	assert.Contains(t, out, "[ERROR] fetch failed")
}

func TestLogger_CallerAnnotation(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{level: LogLevelDebug, output: &buf, includeCaller: true}

	l.Info("analyzing change-set")

	assert.Regexp(t, `^\[INFO\] logger_test\.go:\d+ analyzing change-set`, buf.String())
}

func TestLogger_TimestampPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(config.LoggingConfig{Level: "info", IncludeTimestamp: true})
	l.output = &buf

	l.Info("started")

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \[INFO\] started`, buf.String())
}
