package service

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/cashback"
	"casino-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type ICashbackService interface {
	GetPrograms(ctx context.Context, page serverutils.Page, search string) (*serverutils.PaginatedData[dto.CashbackResponse], error)
	GetProgram(ctx context.Context, id uuid.UUID) (*dto.CashbackResponse, error)
	CreateProgram(ctx context.Context, actor dto.Actor, req dto.CashbackRequest) (*dto.CashbackResponse, error)
	UpdateProgram(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.CashbackRequest) (*dto.CashbackResponse, error)
	DeleteProgram(ctx context.Context, actor dto.Actor, id uuid.UUID) error
	Preview(ctx context.Context, id uuid.UUID, req dto.CashbackPreviewRequest) (*dto.CashbackPreviewResponse, error)
}

type cashbackService struct {
	uowFactory      unitofwork.RepositoryFactory
	logger          logger.ILogger
	cashbackManager *cashback.Manager
	audit           IAuditService
}

func NewCashbackService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, cashbackManager *cashback.Manager, audit IAuditService) ICashbackService {
	return &cashbackService{
		uowFactory:      uowFactory,
		logger:          logger,
		cashbackManager: cashbackManager,
		audit:           audit,
	}
}

func (s *cashbackService) GetPrograms(ctx context.Context, page serverutils.Page, search string) (*serverutils.PaginatedData[dto.CashbackResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	programs, total, err := s.cashbackManager.FindAll(ctx, uow, page, search)
	if err != nil {
		return nil, err
	}
	result := serverutils.Paginated(mapper.CashbacksToResponse(programs), page.Page, page.Limit, total)
	return &result, nil
}

func (s *cashbackService) GetProgram(ctx context.Context, id uuid.UUID) (*dto.CashbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.cashbackManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.CashbackToResponse(p)
	return &resp, nil
}

func (s *cashbackService) CreateProgram(ctx context.Context, actor dto.Actor, req dto.CashbackRequest) (*dto.CashbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.cashbackManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "cashback.create", "cashback", p.Id.String(), map[string]interface{}{"name": p.Name, "tiers": len(p.Tiers)})
	resp := mapper.CashbackToResponse(p)
	return &resp, nil
}

func (s *cashbackService) UpdateProgram(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.CashbackRequest) (*dto.CashbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.cashbackManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "cashback.update", "cashback", id.String(), map[string]interface{}{"name": p.Name, "tiers": len(p.Tiers)})
	resp := mapper.CashbackToResponse(p)
	return &resp, nil
}

func (s *cashbackService) DeleteProgram(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.cashbackManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "cashback.delete", "cashback", id.String(), map[string]interface{}{"name": p.Name})
	return nil
}

func (s *cashbackService) Preview(ctx context.Context, id uuid.UUID, req dto.CashbackPreviewRequest) (*dto.CashbackPreviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.cashbackManager.Preview(ctx, uow, id, req.NetLoss)
}
