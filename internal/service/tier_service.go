package service

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/tier"

	"github.com/google/uuid"
)

type ITierService interface {
	GetTiers(ctx context.Context) ([]dto.TierResponse, error)
	GetTier(ctx context.Context, id uuid.UUID) (*dto.TierResponse, error)
	CreateTier(ctx context.Context, actor dto.Actor, req dto.TierRequest) (*dto.TierResponse, error)
	UpdateTier(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.TierRequest) (*dto.TierResponse, error)
	DeleteTier(ctx context.Context, actor dto.Actor, id uuid.UUID) error
}

type tierService struct {
	uowFactory  unitofwork.RepositoryFactory
	logger      logger.ILogger
	tierManager *tier.Manager
	audit       IAuditService
}

func NewTierService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, tierManager *tier.Manager, audit IAuditService) ITierService {
	return &tierService{
		uowFactory:  uowFactory,
		logger:      logger,
		tierManager: tierManager,
		audit:       audit,
	}
}

func (s *tierService) GetTiers(ctx context.Context) ([]dto.TierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tiers, err := s.tierManager.FindAll(ctx, uow)
	if err != nil {
		return nil, err
	}
	res := make([]dto.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		count, err := s.tierManager.PlayerCount(ctx, uow, t.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, mapper.TierToResponse(t, count))
	}
	return res, nil
}

func (s *tierService) GetTier(ctx context.Context, id uuid.UUID) (*dto.TierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, err := s.tierManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	count, err := s.tierManager.PlayerCount(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.TierToResponse(t, count)
	return &resp, nil
}

func (s *tierService) CreateTier(ctx context.Context, actor dto.Actor, req dto.TierRequest) (*dto.TierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, err := s.tierManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "tier.create", "tier", t.Id.String(), map[string]interface{}{"level": t.Level, "name": t.Name})
	resp := mapper.TierToResponse(t, 0)
	return &resp, nil
}

func (s *tierService) UpdateTier(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.TierRequest) (*dto.TierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, err := s.tierManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	count, err := s.tierManager.PlayerCount(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "tier.update", "tier", id.String(), map[string]interface{}{"level": t.Level, "name": t.Name})
	resp := mapper.TierToResponse(t, count)
	return &resp, nil
}

func (s *tierService) DeleteTier(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	t, err := s.tierManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "tier.delete", "tier", id.String(), map[string]interface{}{"level": t.Level, "name": t.Name})
	return nil
}
