package cashback

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Manager handles cashback program operations
type Manager struct {
	logger logger.ILogger
}

func NewManager(logger logger.ILogger) *Manager {
	return &Manager{logger: logger}
}

func TiersFromPayload(in []dto.CashbackTierPayload) []entity.CashbackTier {
	out := make([]entity.CashbackTier, 0, len(in))
	for _, t := range in {
		out = append(out, entity.CashbackTier{
			MinLoss:    t.MinLoss,
			MaxLoss:    t.MaxLoss,
			Percentage: t.Percentage,
			MaxPayout:  t.MaxPayout,
		})
	}
	return out
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, page serverutils.Page, search string) ([]*entity.CashbackProgram, int64, error) {
	filters := []specification.Specification{
		specification.Search{Fields: []string{"name"}, Query: search},
	}
	total, err := uow.CashbackRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	programs, err := uow.CashbackRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.CashbackProgram, error) {
	p, err := uow.CashbackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("cashback program")
	}
	return p, nil
}

func apply(p *entity.CashbackProgram, req dto.CashbackRequest) error {
	tiers := TiersFromPayload(req.Tiers)
	if err := ValidateTiers(tiers); err != nil {
		return err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Period = entity.CashbackPeriod(req.Period)
	p.Tiers = tiers
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.CashbackRequest) (*entity.CashbackProgram, error) {
	p := &entity.CashbackProgram{IsActive: true}
	if err := apply(p, req); err != nil {
		return nil, err
	}
	if err := uow.CashbackRepository().Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.CashbackRequest) (*entity.CashbackProgram, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := apply(p, req); err != nil {
		return nil, err
	}
	if err := uow.CashbackRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.CashbackProgram, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.CashbackRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Manager) Preview(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, netLoss float64) (*dto.CashbackPreviewResponse, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	match := Preview(p.Tiers, netLoss)
	return &dto.CashbackPreviewResponse{
		NetLoss:    netLoss,
		TierIndex:  match.TierIndex,
		Percentage: match.Percentage,
		Cashback:   match.Cashback,
	}, nil
}
