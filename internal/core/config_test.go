package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
	t.Setenv("AURA_DIR", "")
	t.Setenv("AURA_SOURCE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, "manual", cfg.SourceLabel)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DEBUG", "")
	t.Setenv("AURA_DIR", "/tmp/artifacts")
	t.Setenv("AURA_SOURCE", "jira-import")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/artifacts", cfg.BaseDir)
	assert.Equal(t, "jira-import", cfg.SourceLabel)
}

func TestLoadConfigDebugOverridesLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBUG", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}
