package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ScopeUtmWrite    = "utm:write"
	ScopeContentRead = "content:read"
)

type ApiKey struct {
	Id         uuid.UUID
	Name       string
	Prefix     string
	KeyHash    string
	Scopes     []string
	CreatedBy  *uuid.UUID
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (k *ApiKey) HasScope(scope string) bool {
	for _, s := range k.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

func (k *ApiKey) Usable(now time.Time) bool {
	if k.RevokedAt != nil {
		return false
	}
	return k.ExpiresAt == nil || now.Before(*k.ExpiresAt)
}
