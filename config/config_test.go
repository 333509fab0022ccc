package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-designer/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_FILE", "CATALOG_FILE", "JWT_SECRET", "OPENAI_API_KEY"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "data/users.json", cfg.DataFile)
	assert.Equal(t, "data/templates.json", cfg.CatalogFile)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	_, err := config.Load(t.TempDir() + "/nonexistent.yaml")
	assert.NoError(t, err)
}

func TestLoadYAMLFile(t *testing.T) {
	for _, key := range []string{"PORT", "JWT_SECRET", "OPENAI_API_KEY", "OPENAI_MODEL"} {
		t.Setenv(key, "")
	}

	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte(
		"port: \"9999\"\njwt_secret: from-file\nai:\n  api_key: k\n  model: m\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "k", cfg.AI.APIKey)
	assert.Equal(t, "m", cfg.AI.Model)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "data/users.json", cfg.DataFile)
}

func TestEnvOverridesFile(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("port: \"9999\"\n"), 0644))
	t.Setenv("PORT", "4242")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4242", cfg.Port)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
