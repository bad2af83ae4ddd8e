package entity

import (
	"time"

	"github.com/google/uuid"
)

type PromotionStatus string

const (
	PromotionDraft     PromotionStatus = "draft"
	PromotionPublished PromotionStatus = "published"
	PromotionArchived  PromotionStatus = "archived"
)

type Promotion struct {
	Id        uuid.UUID
	Title     string
	Slug      string
	Summary   string
	Content   string
	ImageURL  string
	BonusId   *uuid.UUID
	StartsAt  time.Time
	EndsAt    time.Time
	Status    PromotionStatus
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Promotion) IsLive(now time.Time) bool {
	return p.Status == PromotionPublished && !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}

type BannerPlacement string

const (
	PlacementHome       BannerPlacement = "home"
	PlacementLobby      BannerPlacement = "lobby"
	PlacementPromotions BannerPlacement = "promotions"
	PlacementSidebar    BannerPlacement = "sidebar"
)

type Banner struct {
	Id        uuid.UUID
	Title     string
	ImageURL  string
	LinkURL   string
	Placement BannerPlacement
	SortOrder int
	IsActive  bool
	StartsAt  *time.Time
	EndsAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Banner) IsLive(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartsAt != nil && now.Before(*b.StartsAt) {
		return false
	}
	if b.EndsAt != nil && !now.Before(*b.EndsAt) {
		return false
	}
	return true
}

type TriviaDifficulty string

const (
	TriviaEasy   TriviaDifficulty = "easy"
	TriviaMedium TriviaDifficulty = "medium"
	TriviaHard   TriviaDifficulty = "hard"
)

type TriviaQuestion struct {
	Id           uuid.UUID
	Question     string
	Options      []string
	CorrectIndex int
	Category     string
	Difficulty   TriviaDifficulty
	RewardAmount float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
