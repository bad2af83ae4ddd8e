package entity

import (
	"time"

	"github.com/google/uuid"
)

type AdminStatus string

const (
	AdminStatusActive    AdminStatus = "active"
	AdminStatusSuspended AdminStatus = "suspended"
)

type Role struct {
	Id          uuid.UUID
	Name        string
	Description string
	Permissions []string
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Admin struct {
	Id           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	RoleId       uuid.UUID
	Role         *Role // populated by FindOneWithRole
	Status       AdminStatus
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type AuditLog struct {
	Id         uuid.UUID
	AdminId    *uuid.UUID
	AdminEmail string
	Action     string
	EntityType string
	EntityId   string
	Details    map[string]interface{}
	IpAddress  string
	CreatedAt  time.Time
}

type Upload struct {
	Id           uuid.UUID
	Key          string
	OriginalName string
	ContentType  string
	Size         int64
	URL          string
	UploadedBy   *uuid.UUID
	CreatedAt    time.Time
}
