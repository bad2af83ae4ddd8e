package dto

import (
	"time"

	"github.com/google/uuid"
)

type RaceListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"q"`
	Status string `query:"status"`
}

type RacePrizePayload struct {
	Rank   int     `json:"rank"`
	Amount float64 `json:"amount"`
}

type RaceRequest struct {
	Name        string             `json:"name" validate:"required,max=255"`
	Description string             `json:"description"`
	StartsAt    time.Time          `json:"starts_at" validate:"required"`
	EndsAt      time.Time          `json:"ends_at" validate:"required"`
	MinWager    float64            `json:"min_wager" validate:"gte=0"`
	Prizes      []RacePrizePayload `json:"prizes" validate:"required"`
	GameFilter  []string           `json:"game_filter" validate:"dive,required"`
	Cancelled   bool               `json:"cancelled"`
}

type RaceResponse struct {
	Id          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	StartsAt    time.Time          `json:"starts_at"`
	EndsAt      time.Time          `json:"ends_at"`
	MinWager    float64            `json:"min_wager"`
	Prizes      []RacePrizePayload `json:"prizes"`
	PrizePool   float64            `json:"prize_pool"`
	GameFilter  []string           `json:"game_filter"`
	Cancelled   bool               `json:"cancelled"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	UserId   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Wagered  float64   `json:"wagered"`
	Prize    float64   `json:"prize"`
}

type LeaderboardResponse struct {
	RaceId  uuid.UUID          `json:"race_id"`
	Status  string             `json:"status"`
	Entries []LeaderboardEntry `json:"entries"`
}
