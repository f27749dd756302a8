package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, 60, cfg.Auth.JWTExpireMinute)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, devJWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, "auth.login.audit", cfg.RabbitMQ.LoginAuditQueue)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("PORT", "5001")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("MYSQL_DB", "dash_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5001, cfg.App.Port)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Contains(t, cfg.MySQLDSN(), "/dash_test?")
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestLoadProductionRejectsDevSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", devJWTSecret)

	_, err := Load()
	assert.Error(t, err)
}
