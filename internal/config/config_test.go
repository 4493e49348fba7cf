package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg.LogLevel = in
		got, err := cfg.SlogLevel()
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	cfg.LogLevel = "chatty"
	_, err := cfg.SlogLevel()
	assert.Error(t, err)
}
