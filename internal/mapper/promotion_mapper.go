package mapper

import (
	"encoding/json"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"

	"gorm.io/datatypes"
)

type BonusMapper struct{}

func NewBonusMapper() *BonusMapper { return &BonusMapper{} }

func (m *BonusMapper) ToEntity(b *model.Bonus) *entity.Bonus {
	if b == nil {
		return nil
	}
	return &entity.Bonus{
		Id:                 b.Id,
		Code:               b.Code,
		Name:               b.Name,
		Description:        b.Description,
		Type:               entity.BonusType(b.Type),
		Reward:             json.RawMessage(b.Reward),
		WageringMultiplier: b.WageringMultiplier,
		MinDeposit:         b.MinDeposit,
		MaxClaimsPerUser:   b.MaxClaimsPerUser,
		Status:             entity.BonusStatus(b.Status),
		StartsAt:           b.StartsAt,
		EndsAt:             b.EndsAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *BonusMapper) ToModel(b *entity.Bonus) *model.Bonus {
	if b == nil {
		return nil
	}
	return &model.Bonus{
		Id:                 b.Id,
		Code:               b.Code,
		Name:               b.Name,
		Description:        b.Description,
		Type:               string(b.Type),
		Reward:             datatypes.JSON(b.Reward),
		WageringMultiplier: b.WageringMultiplier,
		MinDeposit:         b.MinDeposit,
		MaxClaimsPerUser:   b.MaxClaimsPerUser,
		Status:             string(b.Status),
		StartsAt:           b.StartsAt,
		EndsAt:             b.EndsAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (m *BonusMapper) ToEntities(models []*model.Bonus) []*entity.Bonus {
	out := make([]*entity.Bonus, 0, len(models))
	for _, b := range models {
		out = append(out, m.ToEntity(b))
	}
	return out
}

type CashbackMapper struct{}

func NewCashbackMapper() *CashbackMapper { return &CashbackMapper{} }

func (m *CashbackMapper) ToEntity(c *model.CashbackProgram) *entity.CashbackProgram {
	if c == nil {
		return nil
	}
	tiers := make([]entity.CashbackTier, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		tiers = append(tiers, entity.CashbackTier{
			MinLoss:    t.MinLoss,
			MaxLoss:    t.MaxLoss,
			Percentage: t.Percentage,
			MaxPayout:  t.MaxPayout,
		})
	}
	return &entity.CashbackProgram{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Period:      entity.CashbackPeriod(c.Period),
		Tiers:       tiers,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CashbackMapper) ToModel(c *entity.CashbackProgram) *model.CashbackProgram {
	if c == nil {
		return nil
	}
	tiers := make([]model.CashbackTierJSON, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		tiers = append(tiers, model.CashbackTierJSON{
			MinLoss:    t.MinLoss,
			MaxLoss:    t.MaxLoss,
			Percentage: t.Percentage,
			MaxPayout:  t.MaxPayout,
		})
	}
	return &model.CashbackProgram{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Period:      string(c.Period),
		Tiers:       datatypes.JSONSlice[model.CashbackTierJSON](tiers),
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *CashbackMapper) ToEntities(models []*model.CashbackProgram) []*entity.CashbackProgram {
	out := make([]*entity.CashbackProgram, 0, len(models))
	for _, c := range models {
		out = append(out, m.ToEntity(c))
	}
	return out
}

type TierMapper struct{}

func NewTierMapper() *TierMapper { return &TierMapper{} }

func (m *TierMapper) ToEntity(t *model.Tier) *entity.Tier {
	if t == nil {
		return nil
	}
	return &entity.Tier{
		Id:               t.Id,
		Level:            t.Level,
		Name:             t.Name,
		MinPoints:        t.MinPoints,
		CashbackBonusPct: t.CashbackBonusPct,
		WithdrawalLimit:  t.WithdrawalLimit,
		Benefits:         append([]string{}, t.Benefits...),
		Color:            t.Color,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (m *TierMapper) ToModel(t *entity.Tier) *model.Tier {
	if t == nil {
		return nil
	}
	return &model.Tier{
		Id:               t.Id,
		Level:            t.Level,
		Name:             t.Name,
		MinPoints:        t.MinPoints,
		CashbackBonusPct: t.CashbackBonusPct,
		WithdrawalLimit:  t.WithdrawalLimit,
		Benefits:         datatypes.JSONSlice[string](append([]string{}, t.Benefits...)),
		Color:            t.Color,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func (m *TierMapper) ToEntities(models []*model.Tier) []*entity.Tier {
	out := make([]*entity.Tier, 0, len(models))
	for _, t := range models {
		out = append(out, m.ToEntity(t))
	}
	return out
}
