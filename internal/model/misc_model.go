package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApiKey struct {
	Id         uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name       string                      `gorm:"type:varchar(255);not null"`
	Prefix     string                      `gorm:"type:varchar(16);index;not null"`
	KeyHash    string                      `gorm:"type:varchar(64);uniqueIndex;not null"`
	Scopes     datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedBy  *uuid.UUID                  `gorm:"type:uuid"`
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (ApiKey) TableName() string { return "api_keys" }

func (m *ApiKey) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type RacePrizeJSON struct {
	Rank   int     `json:"rank"`
	Amount float64 `json:"amount"`
}

type WagerRace struct {
	Id          uuid.UUID                          `gorm:"type:uuid;primaryKey"`
	Name        string                             `gorm:"type:varchar(255);not null"`
	Description string                             `gorm:"type:text"`
	StartsAt    time.Time                          `gorm:"index;not null"`
	EndsAt      time.Time                          `gorm:"index;not null"`
	MinWager    float64                            `gorm:"type:decimal(18,2);default:0"`
	Prizes      datatypes.JSONSlice[RacePrizeJSON] `gorm:"not null"`
	GameFilter  datatypes.JSONSlice[string]
	Cancelled   bool           `gorm:"default:false"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (WagerRace) TableName() string { return "wager_races" }

func (m *WagerRace) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type TriviaQuestion struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Question     string                      `gorm:"type:text;not null"`
	Options      datatypes.JSONSlice[string] `gorm:"not null"`
	CorrectIndex int                         `gorm:"not null"`
	Category     string                      `gorm:"type:varchar(100);index"`
	Difficulty   string                      `gorm:"type:varchar(10);default:'easy'"`
	RewardAmount float64                     `gorm:"type:decimal(18,2);default:0"`
	IsActive     bool                        `gorm:"default:true"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt              `gorm:"index"`
}

func (TriviaQuestion) TableName() string { return "trivia_questions" }

func (m *TriviaQuestion) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	return nil
}

type UtmEvent struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Event       string     `gorm:"type:varchar(20);index;not null"`
	UtmSource   string     `gorm:"type:varchar(100);index"`
	UtmMedium   string     `gorm:"type:varchar(100)"`
	UtmCampaign string     `gorm:"type:varchar(100);index"`
	UtmContent  string     `gorm:"type:varchar(255)"`
	UtmTerm     string     `gorm:"type:varchar(255)"`
	VisitorId   string     `gorm:"type:varchar(100);index"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"`
	Amount      float64    `gorm:"type:decimal(18,2);default:0"`
	OccurredAt  time.Time  `gorm:"index;not null"`
}

func (UtmEvent) TableName() string { return "utm_events" }

func (m *UtmEvent) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now().UTC()
	}
	return nil
}
