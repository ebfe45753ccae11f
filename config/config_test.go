package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8000", cfg.ServerURL)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.LogFile)
	require.NotEmpty(t, cfg.DataDir)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ASTROAI_SERVER", "https://astro.example.com")
	t.Setenv("ASTROAI_DATA_DIR", "/tmp/astroai-test")
	t.Setenv("ASTROAI_LOG_LEVEL", "debug")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, "https://astro.example.com", cfg.ServerURL)
	require.Equal(t, "/tmp/astroai-test", cfg.DataDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, filepath.Join("/tmp/astroai-test", "session.db"), cfg.KeystorePath())
}
