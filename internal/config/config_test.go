package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "class-marketplace", cfg.App.Name)
	require.Equal(t, "5005", cfg.App.Port)
	require.Equal(t, 60, cfg.Auth.AccessTokenTTLMinutes)
	require.Equal(t, "usd", cfg.Payment.Currency)
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, time.Minute, cfg.Redis.CacheTTL())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "15")
	t.Setenv("REDIS_CACHE_TTL_SECONDS", "120")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.App.Port)
	require.Equal(t, 15, cfg.Auth.AccessTokenTTLMinutes)
	require.Equal(t, 2*time.Minute, cfg.Redis.CacheTTL())
}
