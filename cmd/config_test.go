package cmd

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "minigrep", configBaseName)
	assert.Equal(t, "minigrep.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "MINIGREP", envPrefix)
	assert.Equal(t, "", defaultLogFilename)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"info+2", slog.LevelInfo + 2},
		{"Error-1", slog.LevelError - 1},
		{"8", slog.LevelError},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestNewLogWriter_EmptyPathDiscards(t *testing.T) {
	assert.Equal(t, io.Discard, newLogWriter(""))
	assert.Equal(t, io.Discard, newLogWriter("   "))
}

func TestNewLogWriter_RotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minigrep.log")

	w := newLogWriter(path)

	logger, ok := w.(*lumberjack.Logger)
	require.True(t, ok, "expected *lumberjack.Logger, got %T", w)
	assert.Equal(t, path, logger.Filename)
	assert.Equal(t, defaultLogMaxSize, logger.MaxSize)
	assert.Equal(t, defaultLogMaxBackups, logger.MaxBackups)
	assert.Equal(t, defaultLogMaxAge, logger.MaxAge)
	assert.Equal(t, defaultLogCompress, logger.Compress)
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "minigrep.log")
	configureLogger(path, true)

	slog.Debug("search finished", "matches", 2)

	logger, ok := slog.Default().Handler().(*slog.TextHandler)
	require.True(t, ok)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "search finished")
	assert.Contains(t, string(data), "matches=2")
}

func TestConfigureLogger_DefaultLevelSkipsDebug(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "minigrep.log")
	configureLogger(path, false)

	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
}

func TestConfigureLogger_EnvFilename(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	path := filepath.Join(t.TempDir(), "from-env.log")
	t.Setenv("MINIGREP_LOG_FILENAME", path)

	assert.Equal(t, path, viperLogPath())
}
