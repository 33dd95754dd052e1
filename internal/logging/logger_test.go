package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "json", "info", nil)

	logger.Debug("hidden")
	logger.Info("Feed loaded", "posts", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Feed loaded", entry["msg"])
	assert.Equal(t, float64(3), entry["posts"])
}

func TestNewLogger_TextWithFanout(t *testing.T) {
	var primary, file bytes.Buffer
	logger := NewLogger(&primary, "text", "debug", &file)

	logger.Debug("Opening post", "index", 1)

	assert.Contains(t, primary.String(), "msg=\"Opening post\"")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(file.String()), "{"), "file output should be JSON")
	assert.Contains(t, file.String(), `"index":1`)
}
