package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name        string                      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string                      `gorm:"type:text"`
	Permissions datatypes.JSONSlice[string] `gorm:"not null"`
	IsSystem    bool                        `gorm:"default:false"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (Role) TableName() string { return "roles" }

func (m *Role) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type Admin struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string         `gorm:"type:varchar(255);not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	RoleId       uuid.UUID      `gorm:"type:uuid;index;not null"`
	Role         *Role          `gorm:"foreignKey:RoleId"`
	Status       string         `gorm:"type:varchar(20);default:'active'"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Admin) TableName() string { return "admins" }

func (m *Admin) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type AuditLog struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AdminId    *uuid.UUID     `gorm:"type:uuid;index"`
	AdminEmail string         `gorm:"type:varchar(255)"`
	Action     string         `gorm:"type:varchar(100);index;not null"`
	EntityType string         `gorm:"type:varchar(50);index"`
	EntityId   string         `gorm:"type:varchar(64)"`
	Details    datatypes.JSON
	IpAddress  string         `gorm:"type:varchar(64)"`
	CreatedAt  time.Time      `gorm:"autoCreateTime;index"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (m *AuditLog) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type Upload struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Key          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	OriginalName string     `gorm:"type:varchar(255)"`
	ContentType  string     `gorm:"type:varchar(100)"`
	Size         int64
	URL          string     `gorm:"type:text"`
	UploadedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
}

func (Upload) TableName() string { return "uploads" }

func (m *Upload) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
