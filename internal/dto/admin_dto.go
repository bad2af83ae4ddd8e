package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Admins ---

type AdminListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"q"`
	Status string `query:"status"`
	RoleId string `query:"role_id"`
}

type CreateAdminRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	FullName string    `json:"full_name" validate:"required,max=255"`
	Password string    `json:"password" validate:"required,min=8"`
	RoleId   uuid.UUID `json:"role_id" validate:"required"`
}

type UpdateAdminRequest struct {
	FullName *string    `json:"full_name,omitempty" validate:"omitempty,min=1,max=255"`
	RoleId   *uuid.UUID `json:"role_id,omitempty"`
	Status   *string    `json:"status,omitempty" validate:"omitempty,oneof=active suspended"`
}

type UpdateAdminStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type AdminResponse struct {
	Id          uuid.UUID     `json:"id"`
	Email       string        `json:"email"`
	FullName    string        `json:"full_name"`
	RoleId      uuid.UUID     `json:"role_id"`
	Role        *RoleResponse `json:"role,omitempty"`
	Status      string        `json:"status"`
	LastLoginAt *time.Time    `json:"last_login_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// --- Roles ---

type RoleRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions" validate:"required,min=1,unique,dive,required"`
}

type RoleResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Permissions []string  `json:"permissions"`
	IsSystem    bool      `json:"is_system"`
	AdminCount  int64     `json:"admin_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PermissionCatalogResponse struct {
	Resources   []string `json:"resources"`
	Permissions []string `json:"permissions"`
}
