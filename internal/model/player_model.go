package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Player rows are owned by the casino platform; the back office reads them and
// edits status and tier only.
type Player struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Status       string     `gorm:"type:varchar(20);index;default:'active'"`
	StatusReason string     `gorm:"type:text"`
	TierId       *uuid.UUID `gorm:"type:uuid;index"`
	Balance      float64    `gorm:"type:decimal(18,2);default:0"`
	Country      string     `gorm:"type:varchar(2)"`
	UtmSource    string     `gorm:"type:varchar(100)"`
	UtmCampaign  string     `gorm:"type:varchar(100)"`
	RegisteredAt time.Time  `gorm:"index"`
	LastLoginAt  *time.Time
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Player) TableName() string { return "players" }

func (m *Player) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	if m.RegisteredAt.IsZero() {
		m.RegisteredAt = time.Now().UTC()
	}
	return nil
}

type Transaction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	Player    *Player   `gorm:"foreignKey:UserId"`
	Type      string    `gorm:"type:varchar(20);index;not null"`
	Amount    float64   `gorm:"type:decimal(18,2);not null"`
	Currency  string    `gorm:"type:varchar(3);default:'USD'"`
	Status    string    `gorm:"type:varchar(20);index;not null"`
	Reference string    `gorm:"type:varchar(100)"`
	Game      string    `gorm:"type:varchar(100);index"`
	CreatedAt time.Time `gorm:"index"`
}

func (Transaction) TableName() string { return "transactions" }

func (m *Transaction) BeforeCreate(tx *gorm.DB) error {
	assignId(&m.Id)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
