package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notehub/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notehub")
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, "dev", cfg.Version)
	assert.Empty(t, cfg.GoogleOAuthClientID)
	assert.False(t, cfg.GoogleAuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/notehub")
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id.apps.googleusercontent.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.True(t, cfg.GoogleAuthEnabled())
}

func TestLoad_MissingRequired(t *testing.T) {
	// t.Setenv registers restoration; Unsetenv makes the variable truly absent.
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("AUTH_SECRET", "")
	os.Unsetenv("AUTH_SECRET")

	_, err := config.Load()
	assert.Error(t, err)
}
