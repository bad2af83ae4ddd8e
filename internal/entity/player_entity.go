package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlayerStatus string

const (
	PlayerStatusActive       PlayerStatus = "active"
	PlayerStatusSuspended    PlayerStatus = "suspended"
	PlayerStatusBanned       PlayerStatus = "banned"
	PlayerStatusSelfExcluded PlayerStatus = "self_excluded"
)

// Player is a casino customer. The admin API calls these "users".
type Player struct {
	Id           uuid.UUID
	Username     string
	Email        string
	Status       PlayerStatus
	StatusReason string
	TierId       *uuid.UUID
	Balance      float64
	Country      string
	UtmSource    string
	UtmCampaign  string
	RegisteredAt time.Time
	LastLoginAt  *time.Time
	UpdatedAt    time.Time
}

type PlayerTotals struct {
	Deposits    float64
	Withdrawals float64
	Bets        float64
	Wins        float64
}

type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionBet        TransactionType = "bet"
	TransactionWin        TransactionType = "win"
	TransactionBonus      TransactionType = "bonus"
	TransactionCashback   TransactionType = "cashback"
	TransactionAdjustment TransactionType = "adjustment"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

type Transaction struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Username  string // joined for listings
	Type      TransactionType
	Amount    float64
	Currency  string
	Status    TransactionStatus
	Reference string
	Game      string
	CreatedAt time.Time
}

type TransactionFilter struct {
	UserId    *uuid.UUID
	Type      string
	Status    string
	From      *time.Time
	To        *time.Time
	MinAmount *float64
	MaxAmount *float64
}
