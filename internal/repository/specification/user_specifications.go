package specification

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(s.Email)))
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByRole struct {
	RoleID uuid.UUID
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role_id = ?", s.RoleID)
}

type ByTier struct {
	TierID uuid.UUID
}

func (s ByTier) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tier_id = ?", s.TierID)
}

// LoggedInSince matches players seen at or after Since.
type LoggedInSince struct {
	Since time.Time
}

func (s LoggedInSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("last_login_at >= ?", s.Since.UTC())
}

// WithRole preloads the admin's role.
type WithRole struct{}

func (s WithRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Preload("Role")
}

type ByKeyHash struct {
	Hash string
}

func (s ByKeyHash) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key_hash = ?", s.Hash)
}

// ByName compares names case-insensitively.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(s.Name)))
}
