package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Promotions ---

type PromotionListRequest struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Search string `query:"q"`
	Status string `query:"status"`
	Active bool   `query:"active"`
}

type PromotionRequest struct {
	Title     string     `json:"title" validate:"required,max=255"`
	Slug      string     `json:"slug" validate:"omitempty,max=255"`
	Summary   string     `json:"summary"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"image_url" validate:"omitempty,url"`
	BonusId   *uuid.UUID `json:"bonus_id,omitempty"`
	StartsAt  time.Time  `json:"starts_at" validate:"required"`
	EndsAt    time.Time  `json:"ends_at" validate:"required"`
	Status    string     `json:"status" validate:"omitempty,oneof=draft published archived"`
	SortOrder int        `json:"sort_order"`
}

type PromotionResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Summary   string     `json:"summary"`
	Content   string     `json:"content"`
	ImageURL  string     `json:"image_url"`
	BonusId   *uuid.UUID `json:"bonus_id"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    time.Time  `json:"ends_at"`
	Status    string     `json:"status"`
	SortOrder int        `json:"sort_order"`
	IsLive    bool       `json:"is_live"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// --- Banners ---

type BannerListRequest struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Placement string `query:"placement"`
}

type BannerRequest struct {
	Title     string     `json:"title" validate:"required,max=255"`
	ImageURL  string     `json:"image_url" validate:"required,url"`
	LinkURL   string     `json:"link_url" validate:"omitempty,url"`
	Placement string     `json:"placement" validate:"required,oneof=home lobby promotions sidebar"`
	SortOrder int        `json:"sort_order" validate:"gte=0"`
	IsActive  *bool      `json:"is_active,omitempty"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`
}

type BannerReorderRequest struct {
	Ids []uuid.UUID `json:"ids" validate:"required,min=1,unique"`
}

type BannerResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"image_url"`
	LinkURL   string     `json:"link_url"`
	Placement string     `json:"placement"`
	SortOrder int        `json:"sort_order"`
	IsActive  bool       `json:"is_active"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// --- Trivia ---

type TriviaListRequest struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Search     string `query:"q"`
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
}

type TriviaRequest struct {
	Question     string   `json:"question" validate:"required"`
	Options      []string `json:"options" validate:"required"`
	CorrectIndex int      `json:"correct_index" validate:"gte=0"`
	Category     string   `json:"category" validate:"max=100"`
	Difficulty   string   `json:"difficulty" validate:"required,oneof=easy medium hard"`
	RewardAmount float64  `json:"reward_amount" validate:"gte=0"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type TriviaImportFile struct {
	Questions []TriviaRequest `json:"questions"`
}

type TriviaImportResult struct {
	Index   int        `json:"index"`
	Success bool       `json:"success"`
	Id      *uuid.UUID `json:"id,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type TriviaImportResponse struct {
	CreatedCount int                  `json:"created_count"`
	FailedCount  int                  `json:"failed_count"`
	Results      []TriviaImportResult `json:"results"`
}

type TriviaResponse struct {
	Id           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	Options      []string  `json:"options"`
	CorrectIndex int       `json:"correct_index"`
	Category     string    `json:"category"`
	Difficulty   string    `json:"difficulty"`
	RewardAmount float64   `json:"reward_amount"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
