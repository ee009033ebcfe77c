package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"talent-hub-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestInitWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "warn")
	t.Cleanup(func() { logger.Init("info") })

	logger.Log.Info("dropped")
	logger.Log.Warn("kept", "job_id", "j1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "j1", entry["job_id"])
}
