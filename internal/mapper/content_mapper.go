package mapper

import (
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"

	"gorm.io/datatypes"
)

type PromotionMapper struct{}

func NewPromotionMapper() *PromotionMapper { return &PromotionMapper{} }

func (m *PromotionMapper) ToEntity(p *model.Promotion) *entity.Promotion {
	if p == nil {
		return nil
	}
	return &entity.Promotion{
		Id:        p.Id,
		Title:     p.Title,
		Slug:      p.Slug,
		Summary:   p.Summary,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		BonusId:   p.BonusId,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		Status:    entity.PromotionStatus(p.Status),
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PromotionMapper) ToModel(p *entity.Promotion) *model.Promotion {
	if p == nil {
		return nil
	}
	return &model.Promotion{
		Id:        p.Id,
		Title:     p.Title,
		Slug:      p.Slug,
		Summary:   p.Summary,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		BonusId:   p.BonusId,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		Status:    string(p.Status),
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (m *PromotionMapper) ToEntities(models []*model.Promotion) []*entity.Promotion {
	out := make([]*entity.Promotion, 0, len(models))
	for _, p := range models {
		out = append(out, m.ToEntity(p))
	}
	return out
}

type BannerMapper struct{}

func NewBannerMapper() *BannerMapper { return &BannerMapper{} }

func (m *BannerMapper) ToEntity(b *model.Banner) *entity.Banner {
	if b == nil {
		return nil
	}
	return &entity.Banner{
		Id:        b.Id,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Placement: entity.BannerPlacement(b.Placement),
		SortOrder: b.SortOrder,
		IsActive:  b.IsActive,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *BannerMapper) ToModel(b *entity.Banner) *model.Banner {
	if b == nil {
		return nil
	}
	return &model.Banner{
		Id:        b.Id,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Placement: string(b.Placement),
		SortOrder: b.SortOrder,
		IsActive:  b.IsActive,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (m *BannerMapper) ToEntities(models []*model.Banner) []*entity.Banner {
	out := make([]*entity.Banner, 0, len(models))
	for _, b := range models {
		out = append(out, m.ToEntity(b))
	}
	return out
}

type TriviaMapper struct{}

func NewTriviaMapper() *TriviaMapper { return &TriviaMapper{} }

func (m *TriviaMapper) ToEntity(q *model.TriviaQuestion) *entity.TriviaQuestion {
	if q == nil {
		return nil
	}
	return &entity.TriviaQuestion{
		Id:           q.Id,
		Question:     q.Question,
		Options:      append([]string{}, q.Options...),
		CorrectIndex: q.CorrectIndex,
		Category:     q.Category,
		Difficulty:   entity.TriviaDifficulty(q.Difficulty),
		RewardAmount: q.RewardAmount,
		IsActive:     q.IsActive,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func (m *TriviaMapper) ToModel(q *entity.TriviaQuestion) *model.TriviaQuestion {
	if q == nil {
		return nil
	}
	return &model.TriviaQuestion{
		Id:           q.Id,
		Question:     q.Question,
		Options:      datatypes.JSONSlice[string](append([]string{}, q.Options...)),
		CorrectIndex: q.CorrectIndex,
		Category:     q.Category,
		Difficulty:   string(q.Difficulty),
		RewardAmount: q.RewardAmount,
		IsActive:     q.IsActive,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func (m *TriviaMapper) ToEntities(models []*model.TriviaQuestion) []*entity.TriviaQuestion {
	out := make([]*entity.TriviaQuestion, 0, len(models))
	for _, q := range models {
		out = append(out, m.ToEntity(q))
	}
	return out
}
