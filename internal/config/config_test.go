package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxConns)
	assert.Equal(t, 10*time.Second, cfg.Metadata.Timeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_RETRY_DELAY", "250ms")
	t.Setenv("METADATA_API_URL", "https://metadata.internal:8443")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 50, cfg.Database.MaxConns)
	assert.Equal(t, 250*time.Millisecond, cfg.Database.RetryDelay)
	assert.Equal(t, "https://metadata.internal:8443", cfg.Metadata.BaseURL)
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
}

func TestValidate(t *testing.T) {
	t.Run("relative metadata URL", func(t *testing.T) {
		t.Setenv("METADATA_API_URL", "/books")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production requires secrets", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD")

		t.Setenv("DB_PASSWORD", "s3cret")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "METADATA_API_KEY")

		t.Setenv("METADATA_API_KEY", "key")
		_, err = Load()
		assert.NoError(t, err)
	})
}
