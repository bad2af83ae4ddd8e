package account

import (
	"context"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// StatusTTL bounds how long another instance keeps serving a suspended admin.
const StatusTTL = 15 * time.Second

// StatusCache answers whether the admin behind a token may still act. A
// suspended or deleted admin is refused even while the token is unexpired.
type StatusCache struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewStatusCache(uowFactory unitofwork.RepositoryFactory, ttl time.Duration) *StatusCache {
	return &StatusCache{
		uowFactory: uowFactory,
		cache:      cache.New(ttl, time.Minute),
	}
}

func (c *StatusCache) IsActive(ctx context.Context, adminId uuid.UUID) bool {
	key := adminId.String()
	if cached, ok := c.cache.Get(key); ok {
		return cached.(bool)
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByID{ID: adminId})
	if err != nil {
		// not cached, the next request retries
		return false
	}
	active := admin != nil && admin.Status == entity.AdminStatusActive
	c.cache.SetDefault(key, active)
	return active
}

// Forget drops the cached answer for one admin.
func (c *StatusCache) Forget(adminId uuid.UUID) {
	c.cache.Delete(adminId.String())
}
