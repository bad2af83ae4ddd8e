package mapper

import (
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"
)

type PlayerMapper struct{}

func NewPlayerMapper() *PlayerMapper { return &PlayerMapper{} }

func (m *PlayerMapper) ToEntity(p *model.Player) *entity.Player {
	if p == nil {
		return nil
	}
	return &entity.Player{
		Id:           p.Id,
		Username:     p.Username,
		Email:        p.Email,
		Status:       entity.PlayerStatus(p.Status),
		StatusReason: p.StatusReason,
		TierId:       p.TierId,
		Balance:      p.Balance,
		Country:      p.Country,
		UtmSource:    p.UtmSource,
		UtmCampaign:  p.UtmCampaign,
		RegisteredAt: p.RegisteredAt,
		LastLoginAt:  p.LastLoginAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *PlayerMapper) ToModel(p *entity.Player) *model.Player {
	if p == nil {
		return nil
	}
	return &model.Player{
		Id:           p.Id,
		Username:     p.Username,
		Email:        p.Email,
		Status:       string(p.Status),
		StatusReason: p.StatusReason,
		TierId:       p.TierId,
		Balance:      p.Balance,
		Country:      p.Country,
		UtmSource:    p.UtmSource,
		UtmCampaign:  p.UtmCampaign,
		RegisteredAt: p.RegisteredAt,
		LastLoginAt:  p.LastLoginAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *PlayerMapper) ToEntities(models []*model.Player) []*entity.Player {
	out := make([]*entity.Player, 0, len(models))
	for _, p := range models {
		out = append(out, m.ToEntity(p))
	}
	return out
}

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper { return &TransactionMapper{} }

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	tx := &entity.Transaction{
		Id:        t.Id,
		UserId:    t.UserId,
		Type:      entity.TransactionType(t.Type),
		Amount:    t.Amount,
		Currency:  t.Currency,
		Status:    entity.TransactionStatus(t.Status),
		Reference: t.Reference,
		Game:      t.Game,
		CreatedAt: t.CreatedAt,
	}
	if t.Player != nil {
		tx.Username = t.Player.Username
	}
	return tx
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:        t.Id,
		UserId:    t.UserId,
		Type:      string(t.Type),
		Amount:    t.Amount,
		Currency:  t.Currency,
		Status:    string(t.Status),
		Reference: t.Reference,
		Game:      t.Game,
		CreatedAt: t.CreatedAt,
	}
}

func (m *TransactionMapper) ToEntities(models []*model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(models))
	for _, t := range models {
		out = append(out, m.ToEntity(t))
	}
	return out
}
