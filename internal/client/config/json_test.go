package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"base_url": "https://json.example.com/api",
		"debounce_interval": "750ms",
		"notification_ttl": 2000000000,
		"log_level": "warn"
	}`)
	resetArgs(t, "-c", path)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://json.example.com/api", cfg.BaseURL)
	assert.Equal(t, 750*time.Millisecond, cfg.DebounceInterval)
	assert.Equal(t, 2*time.Second, cfg.NotificationTTL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	path := writeConfigFile(t, `{"base_url": "https://json.example.com/api", "log_level": "warn"}`)
	resetArgs(t, "-c", path, "-l", "error")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// Flags win over the file; file wins over defaults.
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "https://json.example.com/api", cfg.BaseURL)
}

func TestLoadConfig_JSONErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		resetArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		resetArgs(t, "-c", writeConfigFile(t, `{not json`))

		_, err := LoadConfig()
		require.Error(t, err)
	})
}
