package implementation

import (
	"context"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/mapper"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepositoryImpl struct {
	crudRepository[entity.Role, model.Role]
}

func NewRoleRepository(db *gorm.DB) contract.RoleRepository {
	return &RoleRepositoryImpl{newCrudRepository[entity.Role, model.Role](db, mapper.NewRoleMapper())}
}

type AdminRepositoryImpl struct {
	crudRepository[entity.Admin, model.Admin]
}

func NewAdminRepository(db *gorm.DB) contract.AdminRepository {
	return &AdminRepositoryImpl{newCrudRepository[entity.Admin, model.Admin](db, mapper.NewAdminMapper())}
}

func (r *AdminRepositoryImpl) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", time.Now().UTC()).Error
}

type AuditLogRepositoryImpl struct {
	crudRepository[entity.AuditLog, model.AuditLog]
}

func NewAuditLogRepository(db *gorm.DB) contract.AuditLogRepository {
	return &AuditLogRepositoryImpl{newCrudRepository[entity.AuditLog, model.AuditLog](db, mapper.NewAuditLogMapper())}
}

type UploadRepositoryImpl struct {
	crudRepository[entity.Upload, model.Upload]
}

func NewUploadRepository(db *gorm.DB) contract.UploadRepository {
	return &UploadRepositoryImpl{newCrudRepository[entity.Upload, model.Upload](db, mapper.NewUploadMapper())}
}

type ApiKeyRepositoryImpl struct {
	crudRepository[entity.ApiKey, model.ApiKey]
}

func NewApiKeyRepository(db *gorm.DB) contract.ApiKeyRepository {
	return &ApiKeyRepositoryImpl{newCrudRepository[entity.ApiKey, model.ApiKey](db, mapper.NewApiKeyMapper())}
}

func (r *ApiKeyRepositoryImpl) TouchLastUsed(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.ApiKey{}).
		Where("id = ?", id).
		UpdateColumn("last_used_at", time.Now().UTC()).Error
}
