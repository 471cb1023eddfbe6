package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/diesel-reports/internal/infra/config"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
	require.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewWithWriterAddsServiceAttribute(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	cfg := config.Default()
	cfg.Log.Level = "warn"
	var buf bytes.Buffer
	log := NewWithWriter(cfg, &buf)

	log.Info("dropped")
	require.Zero(t, buf.Len())

	log.Warn("kept")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "diesel-reports", entry["service"])
	require.Equal(t, "kept", entry["msg"])
}
