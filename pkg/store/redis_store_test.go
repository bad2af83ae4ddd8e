package store

import (
	"context"
	"testing"
	"time"

	"casino-admin-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestAuthStoreWithoutRedis(t *testing.T) {
	ctx := context.Background()
	s := NewAuthStore(nil, logger.NewNopLogger(), 5, 15*time.Minute)

	assert.NoError(t, s.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	assert.False(t, s.IsRevoked(ctx, "jti"))

	for i := 0; i < 10; i++ {
		s.RecordFailure(ctx, "admin@example.com")
	}
	assert.False(t, s.LoginBlocked(ctx, "admin@example.com"), "throttling is skipped without redis")
	s.ResetFailures(ctx, "admin@example.com")
}

func TestConnectWithoutURL(t *testing.T) {
	assert.Nil(t, Connect(context.Background(), "", logger.NewNopLogger()))
	assert.Nil(t, Connect(context.Background(), "not a url", logger.NewNopLogger()))
}

func TestAttemptsKeyNormalizesEmail(t *testing.T) {
	assert.Equal(t, attemptsKey("admin@example.com"), attemptsKey("  Admin@Example.COM "))
}
