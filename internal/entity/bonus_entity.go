package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type BonusType string

const (
	BonusDepositMatch BonusType = "deposit_match"
	BonusFreeSpins    BonusType = "free_spins"
	BonusFixedCash    BonusType = "fixed_cash"
	BonusNoDeposit    BonusType = "no_deposit"
	BonusReload       BonusType = "reload"
)

type BonusStatus string

const (
	BonusDraft   BonusStatus = "draft"
	BonusActive  BonusStatus = "active"
	BonusPaused  BonusStatus = "paused"
	BonusExpired BonusStatus = "expired"
)

type Bonus struct {
	Id                 uuid.UUID
	Code               string
	Name               string
	Description        string
	Type               BonusType
	Reward             json.RawMessage // shape depends on Type, see pkg/admin/bonus
	WageringMultiplier float64
	MinDeposit         float64
	MaxClaimsPerUser   int
	Status             BonusStatus
	StartsAt           time.Time
	EndsAt             *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type CashbackPeriod string

const (
	CashbackDaily   CashbackPeriod = "daily"
	CashbackWeekly  CashbackPeriod = "weekly"
	CashbackMonthly CashbackPeriod = "monthly"
)

type CashbackTier struct {
	MinLoss    float64
	MaxLoss    *float64 // nil = open ended
	Percentage float64
	MaxPayout  float64 // 0 = uncapped
}

type CashbackProgram struct {
	Id          uuid.UUID
	Name        string
	Description string
	Period      CashbackPeriod
	Tiers       []CashbackTier
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tier is a VIP level.
type Tier struct {
	Id               uuid.UUID
	Level            int
	Name             string
	MinPoints        int64
	CashbackBonusPct float64
	WithdrawalLimit  float64
	Benefits         []string
	Color            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
