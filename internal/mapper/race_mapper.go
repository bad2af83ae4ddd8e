package mapper

import (
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"

	"gorm.io/datatypes"
)

type WagerRaceMapper struct{}

func NewWagerRaceMapper() *WagerRaceMapper { return &WagerRaceMapper{} }

func (m *WagerRaceMapper) ToEntity(r *model.WagerRace) *entity.WagerRace {
	if r == nil {
		return nil
	}
	prizes := make([]entity.RacePrize, 0, len(r.Prizes))
	for _, p := range r.Prizes {
		prizes = append(prizes, entity.RacePrize{Rank: p.Rank, Amount: p.Amount})
	}
	return &entity.WagerRace{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		MinWager:    r.MinWager,
		Prizes:      prizes,
		GameFilter:  append([]string{}, r.GameFilter...),
		Cancelled:   r.Cancelled,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *WagerRaceMapper) ToModel(r *entity.WagerRace) *model.WagerRace {
	if r == nil {
		return nil
	}
	prizes := make([]model.RacePrizeJSON, 0, len(r.Prizes))
	for _, p := range r.Prizes {
		prizes = append(prizes, model.RacePrizeJSON{Rank: p.Rank, Amount: p.Amount})
	}
	return &model.WagerRace{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		MinWager:    r.MinWager,
		Prizes:      datatypes.JSONSlice[model.RacePrizeJSON](prizes),
		GameFilter:  datatypes.JSONSlice[string](append([]string{}, r.GameFilter...)),
		Cancelled:   r.Cancelled,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (m *WagerRaceMapper) ToEntities(models []*model.WagerRace) []*entity.WagerRace {
	out := make([]*entity.WagerRace, 0, len(models))
	for _, r := range models {
		out = append(out, m.ToEntity(r))
	}
	return out
}

type ApiKeyMapper struct{}

func NewApiKeyMapper() *ApiKeyMapper { return &ApiKeyMapper{} }

func (m *ApiKeyMapper) ToEntity(k *model.ApiKey) *entity.ApiKey {
	if k == nil {
		return nil
	}
	return &entity.ApiKey{
		Id:         k.Id,
		Name:       k.Name,
		Prefix:     k.Prefix,
		KeyHash:    k.KeyHash,
		Scopes:     append([]string{}, k.Scopes...),
		CreatedBy:  k.CreatedBy,
		LastUsedAt: k.LastUsedAt,
		ExpiresAt:  k.ExpiresAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}

func (m *ApiKeyMapper) ToModel(k *entity.ApiKey) *model.ApiKey {
	if k == nil {
		return nil
	}
	return &model.ApiKey{
		Id:         k.Id,
		Name:       k.Name,
		Prefix:     k.Prefix,
		KeyHash:    k.KeyHash,
		Scopes:     datatypes.JSONSlice[string](append([]string{}, k.Scopes...)),
		CreatedBy:  k.CreatedBy,
		LastUsedAt: k.LastUsedAt,
		ExpiresAt:  k.ExpiresAt,
		RevokedAt:  k.RevokedAt,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}

func (m *ApiKeyMapper) ToEntities(models []*model.ApiKey) []*entity.ApiKey {
	out := make([]*entity.ApiKey, 0, len(models))
	for _, k := range models {
		out = append(out, m.ToEntity(k))
	}
	return out
}

type UtmEventMapper struct{}

func NewUtmEventMapper() *UtmEventMapper { return &UtmEventMapper{} }

func (m *UtmEventMapper) ToEntity(e *model.UtmEvent) *entity.UtmEvent {
	if e == nil {
		return nil
	}
	return &entity.UtmEvent{
		Id:          e.Id,
		Event:       entity.UtmEventType(e.Event),
		UtmSource:   e.UtmSource,
		UtmMedium:   e.UtmMedium,
		UtmCampaign: e.UtmCampaign,
		UtmContent:  e.UtmContent,
		UtmTerm:     e.UtmTerm,
		VisitorId:   e.VisitorId,
		UserId:      e.UserId,
		Amount:      e.Amount,
		OccurredAt:  e.OccurredAt,
	}
}

func (m *UtmEventMapper) ToModel(e *entity.UtmEvent) *model.UtmEvent {
	if e == nil {
		return nil
	}
	return &model.UtmEvent{
		Id:          e.Id,
		Event:       string(e.Event),
		UtmSource:   e.UtmSource,
		UtmMedium:   e.UtmMedium,
		UtmCampaign: e.UtmCampaign,
		UtmContent:  e.UtmContent,
		UtmTerm:     e.UtmTerm,
		VisitorId:   e.VisitorId,
		UserId:      e.UserId,
		Amount:      e.Amount,
		OccurredAt:  e.OccurredAt,
	}
}

func (m *UtmEventMapper) ToEntities(models []*model.UtmEvent) []*entity.UtmEvent {
	out := make([]*entity.UtmEvent, 0, len(models))
	for _, e := range models {
		out = append(out, m.ToEntity(e))
	}
	return out
}
