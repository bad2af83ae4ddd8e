package banner

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

	"github.com/google/uuid"
)

type Manager struct {
	logger logger.ILogger
}

func NewManager(logger logger.ILogger) *Manager {
	return &Manager{logger: logger}
}

// ValidateSchedule checks an optional window. Either bound may be open.
func ValidateSchedule(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return apperror.Field("ends_at", "must be after starts_at")
	}
	return nil
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.BannerListRequest) ([]*entity.Banner, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	var filters []specification.Specification
	if req.Placement != "" {
		filters = append(filters, specification.Filter("placement", req.Placement))
	}

	total, err := uow.BannerRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	banners, err := uow.BannerRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderBySortOrder),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return banners, total, nil
}

// Live lists banners shown at now, optionally for one placement.
func (m *Manager) Live(ctx context.Context, uow unitofwork.UnitOfWork, placement string, now time.Time) ([]*entity.Banner, error) {
	specs := []specification.Specification{specification.BannerLive{At: now}}
	if placement != "" {
		specs = append(specs, specification.Filter("placement", placement))
	}
	return uow.BannerRepository().FindAll(ctx, append(specs, specification.Scope(scope.OrderBySortOrder))...)
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Banner, error) {
	b, err := uow.BannerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NotFound("banner")
	}
	return b, nil
}

func apply(b *entity.Banner, req dto.BannerRequest) error {
	if err := ValidateSchedule(req.StartsAt, req.EndsAt); err != nil {
		return err
	}
	b.Title = req.Title
	b.ImageURL = req.ImageURL
	b.LinkURL = req.LinkURL
	b.Placement = entity.BannerPlacement(req.Placement)
	b.SortOrder = req.SortOrder
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	b.StartsAt = utcPtr(req.StartsAt)
	b.EndsAt = utcPtr(req.EndsAt)
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.BannerRequest) (*entity.Banner, error) {
	b := &entity.Banner{IsActive: true}
	if err := apply(b, req); err != nil {
		return nil, err
	}
	if err := uow.BannerRepository().Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.BannerRequest) (*entity.Banner, error) {
	b, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := apply(b, req); err != nil {
		return nil, err
	}
	if err := uow.BannerRepository().Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Banner, error) {
	b, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.BannerRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return b, nil
}

// Reorder sets sort_order to each id's position. Unknown ids fail the whole
// call, so uow is expected to be inside a transaction.
func (m *Manager) Reorder(ctx context.Context, uow unitofwork.UnitOfWork, ids []uuid.UUID) error {
	found, err := uow.BannerRepository().Count(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return err
	}
	if found != int64(len(ids)) {
		return apperror.Field("ids", "contains unknown banners")
	}

	for i, id := range ids {
		if err := uow.BannerRepository().UpdateSortOrder(ctx, id, i); err != nil {
			return err
		}
	}
	m.logger.Info("BANNER", "Banners reordered", map[string]interface{}{"count": len(ids)})
	return nil
}
