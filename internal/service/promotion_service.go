package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/promotion"

	"github.com/google/uuid"
)

type IPromotionService interface {
	GetPromotions(ctx context.Context, req dto.PromotionListRequest) (*serverutils.PaginatedData[dto.PromotionResponse], error)
	GetLivePromotions(ctx context.Context) ([]dto.PromotionResponse, error)
	GetPromotion(ctx context.Context, id uuid.UUID) (*dto.PromotionResponse, error)
	CreatePromotion(ctx context.Context, actor dto.Actor, req dto.PromotionRequest) (*dto.PromotionResponse, error)
	UpdatePromotion(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.PromotionRequest) (*dto.PromotionResponse, error)
	DeletePromotion(ctx context.Context, actor dto.Actor, id uuid.UUID) error
}

type promotionService struct {
	uowFactory       unitofwork.RepositoryFactory
	logger           logger.ILogger
	promotionManager *promotion.Manager
	audit            IAuditService
}

func NewPromotionService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, promotionManager *promotion.Manager, audit IAuditService) IPromotionService {
	return &promotionService{
		uowFactory:       uowFactory,
		logger:           logger,
		promotionManager: promotionManager,
		audit:            audit,
	}
}

func (s *promotionService) GetPromotions(ctx context.Context, req dto.PromotionListRequest) (*serverutils.PaginatedData[dto.PromotionResponse], error) {
	now := time.Now().UTC()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	promotions, total, err := s.promotionManager.FindAll(ctx, uow, req, now)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.PromotionsToResponse(promotions, now), page.Page, page.Limit, total)
	return &result, nil
}

func (s *promotionService) GetLivePromotions(ctx context.Context) ([]dto.PromotionResponse, error) {
	now := time.Now().UTC()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	promotions, err := s.promotionManager.Live(ctx, uow, now)
	if err != nil {
		return nil, err
	}
	return mapper.PromotionsToResponse(promotions, now), nil
}

func (s *promotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*dto.PromotionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.promotionManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.PromotionToResponse(p, time.Now().UTC())
	return &resp, nil
}

func (s *promotionService) CreatePromotion(ctx context.Context, actor dto.Actor, req dto.PromotionRequest) (*dto.PromotionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.promotionManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "promotion.create", "promotion", p.Id.String(), map[string]interface{}{"slug": p.Slug, "status": string(p.Status)})
	resp := mapper.PromotionToResponse(p, time.Now().UTC())
	return &resp, nil
}

func (s *promotionService) UpdatePromotion(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.PromotionRequest) (*dto.PromotionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.promotionManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "promotion.update", "promotion", id.String(), map[string]interface{}{"slug": p.Slug, "status": string(p.Status)})
	resp := mapper.PromotionToResponse(p, time.Now().UTC())
	return &resp, nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	p, err := s.promotionManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "promotion.delete", "promotion", id.String(), map[string]interface{}{"slug": p.Slug})
	return nil
}
