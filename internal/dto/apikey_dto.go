package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApiKeyRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Scopes    []string   `json:"scopes" validate:"required,min=1,unique,dive,oneof=utm:write content:read"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type UpdateApiKeyRequest struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Scopes []string `json:"scopes,omitempty" validate:"omitempty,min=1,unique,dive,oneof=utm:write content:read"`
}

type ApiKeyResponse struct {
	Id         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Scopes     []string   `json:"scopes"`
	CreatedBy  *uuid.UUID `json:"created_by"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  *time.Time `json:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ApiKeyCreatedResponse is the only response that ever carries the plaintext key.
type ApiKeyCreatedResponse struct {
	ApiKeyResponse
	Key string `json:"key"`
}
