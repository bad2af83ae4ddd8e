package specification

import (
	"time"

	"gorm.io/gorm"
)

// PromotionLive matches published promotions whose window contains At.
type PromotionLive struct {
	At time.Time
}

func (s PromotionLive) Apply(db *gorm.DB) *gorm.DB {
	at := s.At.UTC()
	return db.Where("status = ? AND starts_at <= ? AND ends_at > ?", "published", at, at)
}

// BannerLive matches active banners whose optional window contains At.
type BannerLive struct {
	At time.Time
}

func (s BannerLive) Apply(db *gorm.DB) *gorm.DB {
	at := s.At.UTC()
	return db.Where("is_active = ?", true).
		Where("(starts_at IS NULL OR starts_at <= ?)", at).
		Where("(ends_at IS NULL OR ends_at > ?)", at)
}

// RaceRunning matches non-cancelled races whose window contains At.
type RaceRunning struct {
	At time.Time
}

func (s RaceRunning) Apply(db *gorm.DB) *gorm.DB {
	at := s.At.UTC()
	return db.Where("cancelled = ? AND starts_at <= ? AND ends_at > ?", false, at, at)
}
