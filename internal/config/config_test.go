package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "not-a-number")
	t.Setenv("PUBLIC_ASSET_BASE_URL", "https://cdn.example.com/")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, "https://cdn.example.com", cfg.Storage.PublicAssetBaseURL)
	assert.False(t, cfg.IsProduction())
}
