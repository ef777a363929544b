package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/dotconf/logging"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_Formats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		format string
		check  func(t *testing.T, out []byte)
	}{
		{
			name:   "empty format writes json",
			format: "",
			check:  requireJSONSave,
		},
		{
			name:   "unknown format falls back to json",
			format: "xml",
			check:  requireJSONSave,
		},
		{
			name:   "text format writes key value pairs",
			format: "text",
			check:  requireTextSave,
		},
		{
			name:   "format is case insensitive",
			format: "Text",
			check:  requireTextSave,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Format: testCase.format}, &buf)
			logger.Info("saved", slog.String("document", "app.yaml"))

			testCase.check(t, buf.Bytes())
		})
	}
}

func requireJSONSave(t *testing.T, out []byte) {
	t.Helper()

	var entry map[string]any

	require.NoError(t, json.Unmarshal(out, &entry), "output should be valid JSON: %s", out)
	require.Equal(t, "saved", entry["msg"])
	require.Equal(t, "app.yaml", entry["document"])
	require.Equal(t, "INFO", entry["level"])
}

func requireTextSave(t *testing.T, out []byte) {
	t.Helper()

	require.False(t, json.Valid(out), "text output should not be JSON: %s", out)
	require.Contains(t, string(out), "level=INFO")
	require.Contains(t, string(out), "msg=saved")
	require.Contains(t, string(out), "document=app.yaml")
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level   string
		format  string
		enabled slog.Level
		dropped slog.Level
	}{
		{level: "debug", format: "text", enabled: slog.LevelDebug, dropped: slog.LevelDebug - 4},
		{level: "WARNING", format: "text", enabled: slog.LevelWarn, dropped: slog.LevelInfo},
		{level: "error", format: "json", enabled: slog.LevelError, dropped: slog.LevelWarn},
		{level: "bogus", format: "json", enabled: slog.LevelInfo, dropped: slog.LevelDebug},
	}

	for _, testCase := range testCases {
		t.Run(testCase.level+"/"+testCase.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			config := logging.LoggerConfig{Level: testCase.level, Format: testCase.format}
			logger := logging.NewLogger(config, &buf)

			logger.Log(context.Background(), testCase.dropped, "dropped")
			require.Empty(t, buf.String())

			logger.Log(context.Background(), testCase.enabled, "kept")
			require.Contains(t, buf.String(), "kept")
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()
	require.NotNil(t, logger)
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
