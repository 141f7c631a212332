package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/sports_connect")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("SERVER_PORT", "9090")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost/sports_connect", cfg.DatabaseURL)
		assert.Equal(t, "test-secret", cfg.JWTSecretKey)
		assert.Equal(t, 9090, cfg.ServerPort)
		assert.False(t, cfg.R2Configured())
	})

	t.Run("port defaults to 8080", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/sports_connect")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("SERVER_PORT", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.ServerPort)
	})

	t.Run("missing database URL fails", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET_KEY", "test-secret")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid port fails", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/sports_connect")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("SERVER_PORT", "not-a-port")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("R2 settings must be complete to count as configured", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/sports_connect")
		t.Setenv("JWT_SECRET_KEY", "test-secret")
		t.Setenv("R2_ACCOUNT_ID", "acct")
		t.Setenv("R2_ACCESS_KEY_ID", "key")
		t.Setenv("R2_SECRET_ACCESS_KEY", "secret")
		t.Setenv("R2_BUCKET_NAME", "avatars")
		t.Setenv("R2_PUBLIC_BASE_URL", "https://cdn.example.com")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.R2Configured())

		t.Setenv("R2_BUCKET_NAME", "")
		cfg, err = Load()
		require.NoError(t, err)
		assert.False(t, cfg.R2Configured())
	})
}
