package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Bonus struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code               string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name               string         `gorm:"type:varchar(255);not null"`
	Description        string         `gorm:"type:text"`
	Type               string         `gorm:"type:varchar(30);index;not null"`
	Reward             datatypes.JSON `gorm:"not null"`
	WageringMultiplier float64        `gorm:"type:decimal(8,2);default:0"`
	MinDeposit         float64        `gorm:"type:decimal(18,2);default:0"`
	MaxClaimsPerUser   int            `gorm:"default:1"`
	Status             string         `gorm:"type:varchar(20);index;default:'draft'"`
	StartsAt           time.Time
	EndsAt             *time.Time
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Bonus) TableName() string { return "bonuses" }

func (m *Bonus) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type CashbackTierJSON struct {
	MinLoss    float64  `json:"min_loss"`
	MaxLoss    *float64 `json:"max_loss,omitempty"`
	Percentage float64  `json:"percentage"`
	MaxPayout  float64  `json:"max_payout"`
}

type CashbackProgram struct {
	Id          uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Name        string                                `gorm:"type:varchar(255);not null"`
	Description string                                `gorm:"type:text"`
	Period      string                                `gorm:"type:varchar(20);not null"`
	Tiers       datatypes.JSONSlice[CashbackTierJSON] `gorm:"not null"`
	IsActive    bool                                  `gorm:"default:true"`
	CreatedAt   time.Time                             `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                             `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt                        `gorm:"index"`
}

func (CashbackProgram) TableName() string { return "cashback_programs" }

func (m *CashbackProgram) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type Tier struct {
	Id               uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Level            int                         `gorm:"uniqueIndex;not null"`
	Name             string                      `gorm:"type:varchar(100);not null"`
	MinPoints        int64                       `gorm:"not null"`
	CashbackBonusPct float64                     `gorm:"type:decimal(5,2);default:0"`
	WithdrawalLimit  float64                     `gorm:"type:decimal(18,2);default:0"`
	Benefits         datatypes.JSONSlice[string] `gorm:"not null"`
	Color            string                      `gorm:"type:varchar(20)"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time                   `gorm:"autoUpdateTime"`
}

func (Tier) TableName() string { return "tiers" }

func (m *Tier) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type Promotion struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Slug      string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Summary   string         `gorm:"type:text"`
	Content   string         `gorm:"type:text"`
	ImageURL  string         `gorm:"type:text"`
	BonusId   *uuid.UUID     `gorm:"type:uuid"`
	StartsAt  time.Time      `gorm:"index"`
	EndsAt    time.Time      `gorm:"index"`
	Status    string         `gorm:"type:varchar(20);index;default:'draft'"`
	SortOrder int            `gorm:"default:0"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Promotion) TableName() string { return "promotions" }

func (m *Promotion) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type Banner struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	ImageURL  string    `gorm:"type:text;not null"`
	LinkURL   string    `gorm:"type:text"`
	Placement string    `gorm:"type:varchar(20);index;not null"`
	SortOrder int       `gorm:"default:0"`
	IsActive  bool      `gorm:"default:true"`
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Banner) TableName() string { return "banners" }

func (m *Banner) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}
