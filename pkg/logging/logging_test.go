package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{verbosity: 0, expected: zerolog.WarnLevel},
		{verbosity: 1, expected: zerolog.InfoLevel},
		{verbosity: 2, expected: zerolog.DebugLevel},
		{verbosity: 3, expected: zerolog.TraceLevel},
		{verbosity: 9, expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.expected, zerolog.GlobalLevel(),
			"verbosity %d", tt.verbosity)
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("core.sync")
	// Smoke test: a component logger is usable without further setup
	logger.Debug().Msg("component logger works")
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	assert.True(t, strings.HasSuffix(path, "dbdm/dbdm.log"), "got %s", path)
}
