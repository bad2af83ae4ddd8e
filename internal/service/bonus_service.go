package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/bonus"
	"casino-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IBonusService interface {
	GetBonuses(ctx context.Context, req dto.BonusListRequest) (*serverutils.PaginatedData[dto.BonusResponse], error)
	GetBonus(ctx context.Context, id uuid.UUID) (*dto.BonusResponse, error)
	CreateBonus(ctx context.Context, actor dto.Actor, req dto.BonusRequest) (*dto.BonusResponse, error)
	UpdateBonus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.BonusRequest) (*dto.BonusResponse, error)
	ChangeBonusStatus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.BonusStatusRequest) (*dto.BonusResponse, error)
	DeleteBonus(ctx context.Context, actor dto.Actor, id uuid.UUID) error
	EstimateBonus(ctx context.Context, id uuid.UUID, req dto.BonusEstimateRequest) (*dto.BonusEstimateResponse, error)
}

type bonusService struct {
	uowFactory   unitofwork.RepositoryFactory
	logger       logger.ILogger
	bonusManager *bonus.Manager
	audit        IAuditService
}

func NewBonusService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, bonusManager *bonus.Manager, audit IAuditService) IBonusService {
	return &bonusService{
		uowFactory:   uowFactory,
		logger:       logger,
		bonusManager: bonusManager,
		audit:        audit,
	}
}

func (s *bonusService) GetBonuses(ctx context.Context, req dto.BonusListRequest) (*serverutils.PaginatedData[dto.BonusResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	bonuses, total, err := s.bonusManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.BonusesToResponse(bonuses), page.Page, page.Limit, total)
	return &result, nil
}

func (s *bonusService) GetBonus(ctx context.Context, id uuid.UUID) (*dto.BonusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bonusManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.BonusToResponse(b)
	return &resp, nil
}

func (s *bonusService) CreateBonus(ctx context.Context, actor dto.Actor, req dto.BonusRequest) (*dto.BonusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bonusManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "bonus.create", "bonus", b.Id.String(), map[string]interface{}{"code": b.Code, "type": string(b.Type)})
	resp := mapper.BonusToResponse(b)
	return &resp, nil
}

func (s *bonusService) UpdateBonus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.BonusRequest) (*dto.BonusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bonusManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "bonus.update", "bonus", id.String(), map[string]interface{}{"code": b.Code})
	resp := mapper.BonusToResponse(b)
	return &resp, nil
}

func (s *bonusService) ChangeBonusStatus(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.BonusStatusRequest) (*dto.BonusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bonusManager.ChangeStatus(ctx, uow, id, req.Status)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "bonus.status", "bonus", id.String(), map[string]interface{}{"code": b.Code, "status": req.Status})
	resp := mapper.BonusToResponse(b)
	return &resp, nil
}

func (s *bonusService) DeleteBonus(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bonusManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "bonus.delete", "bonus", id.String(), map[string]interface{}{"code": b.Code})
	return nil
}

func (s *bonusService) EstimateBonus(ctx context.Context, id uuid.UUID, req dto.BonusEstimateRequest) (*dto.BonusEstimateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.bonusManager.Estimate(ctx, uow, id, req.Deposit, time.Now().UTC())
}
