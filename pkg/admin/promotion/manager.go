package promotion

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	adminEvents "casino-admin-be/pkg/admin/events"

	"github.com/google/uuid"
)

type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.PromotionListRequest, now time.Time) ([]*entity.Promotion, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	filters := []specification.Specification{
		specification.Search{Fields: []string{"title", "slug"}, Query: req.Search},
	}
	if req.Status != "" {
		filters = append(filters, specification.Filter("status", req.Status))
	}
	if req.Active {
		filters = append(filters, specification.PromotionLive{At: now})
	}

	total, err := uow.PromotionRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	promotions, err := uow.PromotionRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderBySortOrder),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return promotions, total, nil
}

// Live lists published promotions running at now, for the public API.
func (m *Manager) Live(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time) ([]*entity.Promotion, error) {
	return uow.PromotionRepository().FindAll(ctx,
		specification.PromotionLive{At: now},
		specification.Scope(scope.OrderBySortOrder),
	)
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Promotion, error) {
	p, err := uow.PromotionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("promotion")
	}
	return p, nil
}

func (m *Manager) apply(ctx context.Context, uow unitofwork.UnitOfWork, p *entity.Promotion, req dto.PromotionRequest) error {
	if !req.EndsAt.After(req.StartsAt) {
		return apperror.Field("ends_at", "must be after starts_at")
	}
	slug, err := ResolveSlug(req.Slug, req.Title)
	if err != nil {
		return err
	}

	specs := []specification.Specification{
		specification.IncludeDeleted{},
		specification.Filter("slug", slug),
	}
	if p.Id != uuid.Nil {
		specs = append(specs, specification.ExcludeID{ID: p.Id})
	}
	taken, err := uow.PromotionRepository().Count(ctx, specs...)
	if err != nil {
		return err
	}
	if taken > 0 {
		return apperror.Conflict("promotion slug %s already exists", slug)
	}

	if req.BonusId != nil {
		bonus, err := uow.BonusRepository().FindOne(ctx, specification.ByID{ID: *req.BonusId})
		if err != nil {
			return err
		}
		if bonus == nil {
			return apperror.Field("bonus_id", "bonus does not exist")
		}
	}

	p.Title = req.Title
	p.Slug = slug
	p.Summary = req.Summary
	p.Content = req.Content
	p.ImageURL = req.ImageURL
	p.BonusId = req.BonusId
	p.StartsAt = req.StartsAt.UTC()
	p.EndsAt = req.EndsAt.UTC()
	p.SortOrder = req.SortOrder
	if req.Status != "" {
		p.Status = entity.PromotionStatus(req.Status)
	}
	return nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.PromotionRequest) (*entity.Promotion, error) {
	p := &entity.Promotion{Status: entity.PromotionDraft}
	if err := m.apply(ctx, uow, p, req); err != nil {
		return nil, err
	}
	if err := uow.PromotionRepository().Create(ctx, p); err != nil {
		return nil, err
	}
	if p.Status == entity.PromotionPublished {
		m.published(ctx, p)
	}
	return p, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.PromotionRequest) (*entity.Promotion, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	wasPublished := p.Status == entity.PromotionPublished
	if err := m.apply(ctx, uow, p, req); err != nil {
		return nil, err
	}
	if err := uow.PromotionRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	if !wasPublished && p.Status == entity.PromotionPublished {
		m.published(ctx, p)
	}
	return p, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Promotion, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.PromotionRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (m *Manager) published(ctx context.Context, p *entity.Promotion) {
	m.logger.Info("PROMOTION", "Promotion published", map[string]interface{}{"promotion_id": p.Id.String(), "slug": p.Slug})
	m.publisher.PublishPromotionPublished(ctx, p.Id, p.Slug)
}
