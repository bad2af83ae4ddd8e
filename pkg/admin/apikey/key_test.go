package apikey

import (
	"strings"
	"testing"
	"time"

	"casino-admin-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	plaintext, prefix, hash, err := Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(plaintext, "ck_live_"))
	assert.Len(t, plaintext, 48)
	assert.Len(t, prefix, 12)
	assert.Equal(t, plaintext[:12], prefix)
	assert.Len(t, hash, 64)
	assert.NotContains(t, hash, plaintext[8:])
	assert.True(t, WellFormed(plaintext))
	assert.True(t, Matches(plaintext, hash))

	other, _, _, err := Generate()
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, other)
	assert.False(t, Matches(other, hash))
}

func TestWellFormed(t *testing.T) {
	assert.False(t, WellFormed(""))
	assert.False(t, WellFormed("ck_live_short"))
	assert.False(t, WellFormed("ck_test_"+strings.Repeat("a", 40)))
	assert.False(t, WellFormed("ck_live_"+strings.Repeat("z", 40)))
	assert.True(t, WellFormed("ck_live_"+strings.Repeat("0f", 20)))
}

func TestHashIsStable(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Hash(""))
}

func TestKeyUsability(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&entity.ApiKey{}).Usable(now))
	assert.True(t, (&entity.ApiKey{ExpiresAt: &future}).Usable(now))
	assert.False(t, (&entity.ApiKey{ExpiresAt: &past}).Usable(now))
	assert.False(t, (&entity.ApiKey{ExpiresAt: &now}).Usable(now), "expiry instant is exclusive")
	assert.False(t, (&entity.ApiKey{RevokedAt: &past}).Usable(now))

	k := &entity.ApiKey{Scopes: []string{entity.ScopeUtmWrite}}
	assert.True(t, k.HasScope(entity.ScopeUtmWrite))
	assert.False(t, k.HasScope(entity.ScopeContentRead))
}
