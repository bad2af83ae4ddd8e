package contract

import (
	"context"

	"casino-admin-be/internal/entity"

	"github.com/google/uuid"
)

type RoleRepository interface {
	CrudRepository[entity.Role]
}

type AdminRepository interface {
	CrudRepository[entity.Admin]
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuditLogRepository interface {
	CrudRepository[entity.AuditLog]
}

type UploadRepository interface {
	CrudRepository[entity.Upload]
}

type ApiKeyRepository interface {
	CrudRepository[entity.ApiKey]
	TouchLastUsed(ctx context.Context, id uuid.UUID) error
}
