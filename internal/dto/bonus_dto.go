package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// --- Bonuses ---

type BonusListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"q"`
	Type   string `query:"type"`
	Status string `query:"status"`
}

type BonusRequest struct {
	Code               string          `json:"code" validate:"required"`
	Name               string          `json:"name" validate:"required,max=255"`
	Description        string          `json:"description"`
	Type               string          `json:"type" validate:"required,oneof=deposit_match free_spins fixed_cash no_deposit reload"`
	Reward             json.RawMessage `json:"reward" validate:"required"`
	WageringMultiplier float64         `json:"wagering_multiplier" validate:"gte=0,lte=100"`
	MinDeposit         float64         `json:"min_deposit" validate:"gte=0"`
	MaxClaimsPerUser   int             `json:"max_claims_per_user" validate:"gte=1"`
	StartsAt           time.Time       `json:"starts_at" validate:"required"`
	EndsAt             *time.Time      `json:"ends_at,omitempty"`
}

type BonusStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft active paused expired"`
}

type BonusEstimateRequest struct {
	Deposit float64 `json:"deposit" validate:"gt=0"`
}

type BonusEstimateResponse struct {
	Deposit  float64 `json:"deposit"`
	Credited float64 `json:"credited"`
	Eligible bool    `json:"eligible"`
}

type BonusResponse struct {
	Id                 uuid.UUID       `json:"id"`
	Code               string          `json:"code"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Type               string          `json:"type"`
	Reward             json.RawMessage `json:"reward"`
	WageringMultiplier float64         `json:"wagering_multiplier"`
	MinDeposit         float64         `json:"min_deposit"`
	MaxClaimsPerUser   int             `json:"max_claims_per_user"`
	Status             string          `json:"status"`
	StartsAt           time.Time       `json:"starts_at"`
	EndsAt             *time.Time      `json:"ends_at"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// --- Cashback ---

type CashbackTierPayload struct {
	MinLoss    float64  `json:"min_loss"`
	MaxLoss    *float64 `json:"max_loss,omitempty"`
	Percentage float64  `json:"percentage"`
	MaxPayout  float64  `json:"max_payout"`
}

type CashbackRequest struct {
	Name        string                `json:"name" validate:"required,max=255"`
	Description string                `json:"description"`
	Period      string                `json:"period" validate:"required,oneof=daily weekly monthly"`
	Tiers       []CashbackTierPayload `json:"tiers" validate:"required"`
	IsActive    *bool                 `json:"is_active,omitempty"`
}

type CashbackPreviewRequest struct {
	NetLoss float64 `json:"net_loss"`
}

type CashbackPreviewResponse struct {
	NetLoss    float64 `json:"net_loss"`
	TierIndex  int     `json:"tier_index"`
	Percentage float64 `json:"percentage"`
	Cashback   float64 `json:"cashback"`
}

type CashbackResponse struct {
	Id          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Period      string                `json:"period"`
	Tiers       []CashbackTierPayload `json:"tiers"`
	IsActive    bool                  `json:"is_active"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// --- VIP tiers ---

type TierRequest struct {
	Level            int      `json:"level" validate:"gte=1"`
	Name             string   `json:"name" validate:"required,max=100"`
	MinPoints        int64    `json:"min_points" validate:"gte=0"`
	CashbackBonusPct float64  `json:"cashback_bonus_pct" validate:"gte=0,lte=100"`
	WithdrawalLimit  float64  `json:"withdrawal_limit" validate:"gte=0"`
	Benefits         []string `json:"benefits" validate:"dive,required"`
	Color            string   `json:"color" validate:"omitempty,hexcolor"`
}

type TierResponse struct {
	Id               uuid.UUID `json:"id"`
	Level            int       `json:"level"`
	Name             string    `json:"name"`
	MinPoints        int64     `json:"min_points"`
	CashbackBonusPct float64   `json:"cashback_bonus_pct"`
	WithdrawalLimit  float64   `json:"withdrawal_limit"`
	Benefits         []string  `json:"benefits"`
	Color            string    `json:"color"`
	PlayerCount      int64     `json:"player_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
