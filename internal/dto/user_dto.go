package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Players (exposed as "users") ---

type UserListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"q"`
	Status string `query:"status"`
	TierId string `query:"tier_id"`
}

type UserListResponse struct {
	Id           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Status       string     `json:"status"`
	TierId       *uuid.UUID `json:"tier_id"`
	Balance      float64    `json:"balance"`
	Country      string     `json:"country"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

type UserDetailResponse struct {
	UserListResponse
	StatusReason     string        `json:"status_reason"`
	Tier             *TierResponse `json:"tier,omitempty"`
	UtmSource        string        `json:"utm_source"`
	UtmCampaign      string        `json:"utm_campaign"`
	TotalDeposits    float64       `json:"total_deposits"`
	TotalWithdrawals float64       `json:"total_withdrawals"`
	TotalBets        float64       `json:"total_bets"`
	TotalWins        float64       `json:"total_wins"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended banned self_excluded"`
	Reason string `json:"reason" validate:"max=500"`
}

type UpdateUserTierRequest struct {
	TierId *uuid.UUID `json:"tier_id"`
}

// --- Transactions ---

type TransactionListRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	UserId    string `query:"user_id"`
	Type      string `query:"type"`
	Status    string `query:"status"`
	From      string `query:"from"`
	To        string `query:"to"`
	MinAmount string `query:"min_amount"`
	MaxAmount string `query:"max_amount"`
}

type TransactionResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Reference string    `json:"reference"`
	Game      string    `json:"game"`
	CreatedAt time.Time `json:"created_at"`
}
