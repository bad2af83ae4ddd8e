package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/banner"
	"casino-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IBannerService interface {
	GetBanners(ctx context.Context, req dto.BannerListRequest) (*serverutils.PaginatedData[dto.BannerResponse], error)
	GetLiveBanners(ctx context.Context, placement string) ([]dto.BannerResponse, error)
	GetBanner(ctx context.Context, id uuid.UUID) (*dto.BannerResponse, error)
	CreateBanner(ctx context.Context, actor dto.Actor, req dto.BannerRequest) (*dto.BannerResponse, error)
	UpdateBanner(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.BannerRequest) (*dto.BannerResponse, error)
	DeleteBanner(ctx context.Context, actor dto.Actor, id uuid.UUID) error
	ReorderBanners(ctx context.Context, actor dto.Actor, req dto.BannerReorderRequest) error
}

type bannerService struct {
	uowFactory    unitofwork.RepositoryFactory
	logger        logger.ILogger
	bannerManager *banner.Manager
	audit         IAuditService
}

func NewBannerService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, bannerManager *banner.Manager, audit IAuditService) IBannerService {
	return &bannerService{
		uowFactory:    uowFactory,
		logger:        logger,
		bannerManager: bannerManager,
		audit:         audit,
	}
}

func (s *bannerService) GetBanners(ctx context.Context, req dto.BannerListRequest) (*serverutils.PaginatedData[dto.BannerResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	banners, total, err := s.bannerManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.BannersToResponse(banners), page.Page, page.Limit, total)
	return &result, nil
}

func (s *bannerService) GetLiveBanners(ctx context.Context, placement string) ([]dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	banners, err := s.bannerManager.Live(ctx, uow, placement, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return mapper.BannersToResponse(banners), nil
}

func (s *bannerService) GetBanner(ctx context.Context, id uuid.UUID) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bannerManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.BannerToResponse(b)
	return &resp, nil
}

func (s *bannerService) CreateBanner(ctx context.Context, actor dto.Actor, req dto.BannerRequest) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bannerManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "banner.create", "banner", b.Id.String(), map[string]interface{}{"title": b.Title, "placement": string(b.Placement)})
	resp := mapper.BannerToResponse(b)
	return &resp, nil
}

func (s *bannerService) UpdateBanner(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.BannerRequest) (*dto.BannerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bannerManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "banner.update", "banner", id.String(), map[string]interface{}{"title": b.Title})
	resp := mapper.BannerToResponse(b)
	return &resp, nil
}

func (s *bannerService) DeleteBanner(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	b, err := s.bannerManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "banner.delete", "banner", id.String(), map[string]interface{}{"title": b.Title})
	return nil
}

func (s *bannerService) ReorderBanners(ctx context.Context, actor dto.Actor, req dto.BannerReorderRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := inTx(ctx, uow, func() error {
		return s.bannerManager.Reorder(ctx, uow, req.Ids)
	}); err != nil {
		return err
	}

	ids := make([]string, 0, len(req.Ids))
	for _, id := range req.Ids {
		ids = append(ids, id.String())
	}
	s.audit.Record(ctx, actor, "banner.reorder", "banner", "", map[string]interface{}{"ids": ids})
	return nil
}
