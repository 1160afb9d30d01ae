package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	prog.done("search completed")
	assert.Contains(t, buf.String(), "search completed (")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	got := loggerFromContext(withLogger(context.Background(), custom))
	require.Same(t, custom, got)
	got.Info("routed")
	assert.Contains(t, buf.String(), "routed")
}
