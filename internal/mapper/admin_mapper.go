package mapper

import (
	"encoding/json"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"

	"gorm.io/datatypes"
)

type RoleMapper struct{}

func NewRoleMapper() *RoleMapper { return &RoleMapper{} }

func (m *RoleMapper) ToEntity(r *model.Role) *entity.Role {
	if r == nil {
		return nil
	}
	return &entity.Role{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Permissions: append([]string{}, r.Permissions...),
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *RoleMapper) ToModel(r *entity.Role) *model.Role {
	if r == nil {
		return nil
	}
	return &model.Role{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Permissions: datatypes.JSONSlice[string](append([]string{}, r.Permissions...)),
		IsSystem:    r.IsSystem,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *RoleMapper) ToEntities(models []*model.Role) []*entity.Role {
	out := make([]*entity.Role, 0, len(models))
	for _, r := range models {
		out = append(out, m.ToEntity(r))
	}
	return out
}

type AdminMapper struct {
	roles *RoleMapper
}

func NewAdminMapper() *AdminMapper { return &AdminMapper{roles: NewRoleMapper()} }

func (m *AdminMapper) ToEntity(a *model.Admin) *entity.Admin {
	if a == nil {
		return nil
	}
	return &entity.Admin{
		Id:           a.Id,
		Email:        a.Email,
		FullName:     a.FullName,
		PasswordHash: a.PasswordHash,
		RoleId:       a.RoleId,
		Role:         m.roles.ToEntity(a.Role),
		Status:       entity.AdminStatus(a.Status),
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToModel never carries the Role association; saving it would upsert the role.
func (m *AdminMapper) ToModel(a *entity.Admin) *model.Admin {
	if a == nil {
		return nil
	}
	return &model.Admin{
		Id:           a.Id,
		Email:        a.Email,
		FullName:     a.FullName,
		PasswordHash: a.PasswordHash,
		RoleId:       a.RoleId,
		Status:       string(a.Status),
		LastLoginAt:  a.LastLoginAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (m *AdminMapper) ToEntities(models []*model.Admin) []*entity.Admin {
	out := make([]*entity.Admin, 0, len(models))
	for _, a := range models {
		out = append(out, m.ToEntity(a))
	}
	return out
}

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper { return &AuditLogMapper{} }

func (m *AuditLogMapper) ToEntity(a *model.AuditLog) *entity.AuditLog {
	if a == nil {
		return nil
	}
	var details map[string]interface{}
	if len(a.Details) > 0 {
		_ = json.Unmarshal(a.Details, &details)
	}
	return &entity.AuditLog{
		Id:         a.Id,
		AdminId:    a.AdminId,
		AdminEmail: a.AdminEmail,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Details:    details,
		IpAddress:  a.IpAddress,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(a *entity.AuditLog) *model.AuditLog {
	if a == nil {
		return nil
	}
	details, _ := json.Marshal(a.Details)
	return &model.AuditLog{
		Id:         a.Id,
		AdminId:    a.AdminId,
		AdminEmail: a.AdminEmail,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Details:    datatypes.JSON(details),
		IpAddress:  a.IpAddress,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(models []*model.AuditLog) []*entity.AuditLog {
	out := make([]*entity.AuditLog, 0, len(models))
	for _, a := range models {
		out = append(out, m.ToEntity(a))
	}
	return out
}

type UploadMapper struct{}

func NewUploadMapper() *UploadMapper { return &UploadMapper{} }

func (m *UploadMapper) ToEntity(u *model.Upload) *entity.Upload {
	if u == nil {
		return nil
	}
	return &entity.Upload{
		Id:           u.Id,
		Key:          u.Key,
		OriginalName: u.OriginalName,
		ContentType:  u.ContentType,
		Size:         u.Size,
		URL:          u.URL,
		UploadedBy:   u.UploadedBy,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UploadMapper) ToModel(u *entity.Upload) *model.Upload {
	if u == nil {
		return nil
	}
	return &model.Upload{
		Id:           u.Id,
		Key:          u.Key,
		OriginalName: u.OriginalName,
		ContentType:  u.ContentType,
		Size:         u.Size,
		URL:          u.URL,
		UploadedBy:   u.UploadedBy,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UploadMapper) ToEntities(models []*model.Upload) []*entity.Upload {
	out := make([]*entity.Upload, 0, len(models))
	for _, u := range models {
		out = append(out, m.ToEntity(u))
	}
	return out
}
