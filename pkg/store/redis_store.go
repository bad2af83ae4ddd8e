// Package store keeps short-lived auth state in redis: revoked token ids and
// failed login counters. A nil client turns every call into a no-op.
package store

import (
	"context"
	"strings"
	"time"

	"casino-admin-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	revokedPrefix  = "auth:revoked:"
	attemptsPrefix = "auth:login_failures:"
)

type AuthStore struct {
	rdb         *redis.Client
	logger      logger.ILogger
	maxAttempts int
	window      time.Duration
}

func NewAuthStore(rdb *redis.Client, log logger.ILogger, maxAttempts int, window time.Duration) *AuthStore {
	return &AuthStore{rdb: rdb, logger: log, maxAttempts: maxAttempts, window: window}
}

// Connect parses a redis:// URL and pings it. On failure it returns nil so
// callers run without redis.
func Connect(ctx context.Context, url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("REDIS", "Invalid REDIS_URL, running without redis", map[string]interface{}{"error": err.Error()})
		return nil
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("REDIS", "Redis unreachable, running without redis", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	log.Info("REDIS", "Connected", nil)
	return rdb
}

func attemptsKey(email string) string {
	return attemptsPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Revoke blacklists jti until its token would expire anyway.
func (s *AuthStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

// IsRevoked fails open when redis errors.
func (s *AuthStore) IsRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil {
		return false
	}
	n, err := s.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		s.logger.Warn("REDIS", "Revocation check failed", map[string]interface{}{"error": err.Error()})
		return false
	}
	return n > 0
}

// LoginBlocked reports whether email has used up its failed attempts.
func (s *AuthStore) LoginBlocked(ctx context.Context, email string) bool {
	if s.rdb == nil || s.maxAttempts <= 0 {
		return false
	}
	n, err := s.rdb.Get(ctx, attemptsKey(email)).Int()
	if err != nil {
		return false
	}
	return n >= s.maxAttempts
}

// RecordFailure counts a failed login. The window starts at the first failure.
func (s *AuthStore) RecordFailure(ctx context.Context, email string) {
	if s.rdb == nil {
		return
	}
	key := attemptsKey(email)
	pipe := s.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("REDIS", "Failed to record login failure", map[string]interface{}{"error": err.Error()})
	}
}

func (s *AuthStore) ResetFailures(ctx context.Context, email string) {
	if s.rdb == nil {
		return
	}
	s.rdb.Del(ctx, attemptsKey(email))
}
