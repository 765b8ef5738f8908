package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/hjarta-config/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "INFO"}, &buf)
	logger.Info("loading configuration file", slog.String("path", "config/app.yml"))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "loading configuration file", logEntry["msg"])
	require.Equal(t, "config/app.yml", logEntry["path"])
	require.Equal(t, "INFO", logEntry["level"])
}

func TestNewLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Format: "TEXT"}, &buf)
	logger.Info("hello", slog.String("key", "value"))

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "key=value")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{name: "debug enabled at debug", configLevel: "debug", logLevel: slog.LevelDebug, shouldLog: true},
		{name: "debug filtered at info", configLevel: "info", logLevel: slog.LevelDebug, shouldLog: false},
		{name: "info filtered at warning", configLevel: "WARNING", logLevel: slog.LevelInfo, shouldLog: false},
		{name: "error logged at warn", configLevel: "warn", logLevel: slog.LevelError, shouldLog: true},
		{name: "warn filtered at error", configLevel: "ERROR", logLevel: slog.LevelWarn, shouldLog: false},
		{name: "empty level defaults to info", configLevel: "", logLevel: slog.LevelInfo, shouldLog: true},
		{name: "invalid level defaults to info", configLevel: "INVALID", logLevel: slog.LevelDebug, shouldLog: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &buf)
			logger.Log(context.Background(), testCase.logLevel, "test message")

			if testCase.shouldLog {
				require.NotEmpty(t, buf.String(), "log should be written")
			} else {
				require.Empty(t, buf.String(), "log should not be written")
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()

	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
