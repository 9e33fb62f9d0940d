package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("reads a yaml config", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "marketdata.yaml")

		content := "base_url: https://example.test\nstream_url: wss://example.test/options\napi_key_env: TEST_KEY\n"
		require.Nil(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.Nil(t, err)
		assert.Equal(t, "https://example.test", cfg.BaseURL)
		assert.Equal(t, "wss://example.test/options", cfg.StreamURL)
		assert.Equal(t, "TEST_KEY", cfg.APIKeyEnv)
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Nil(t, err)
		assert.Equal(t, "", cfg.BaseURL)
		assert.Equal(t, defaultAPIKeyEnv, cfg.APIKeyEnv)
	})

	t.Run("resolves the api key from the environment", func(t *testing.T) {
		t.Setenv("TEST_KEY", "secret")

		cfg := &Config{APIKeyEnv: "TEST_KEY"}
		key, err := cfg.APIKey()
		require.Nil(t, err)
		assert.Equal(t, "secret", key)

		cfg = &Config{APIKeyEnv: "TEST_KEY_UNSET"}
		_, err = cfg.APIKey()
		assert.NotNil(t, err)
	})
}
