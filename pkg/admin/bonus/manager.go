package bonus

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

// Manager handles bonus admin operations
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

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.BonusListRequest) ([]*entity.Bonus, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	filters := []specification.Specification{
		specification.Search{Fields: []string{"code", "name"}, Query: req.Search},
	}
	if req.Type != "" {
		filters = append(filters, specification.Filter("type", req.Type))
	}
	if req.Status != "" {
		filters = append(filters, specification.Filter("status", req.Status))
	}

	total, err := uow.BonusRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}

	bonuses, err := uow.BonusRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return bonuses, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Bonus, error) {
	b, err := uow.BonusRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperror.NotFound("bonus")
	}
	return b, nil
}

// apply validates req and copies it onto b. Status is not touched.
func (m *Manager) apply(ctx context.Context, uow unitofwork.UnitOfWork, b *entity.Bonus, req dto.BonusRequest) error {
	code, err := NormalizeCode(req.Code)
	if err != nil {
		return err
	}
	bonusType := entity.BonusType(req.Type)
	reward, err := NormalizeReward(bonusType, req.Reward)
	if err != nil {
		return err
	}
	if err := ValidateWindow(req.StartsAt, req.EndsAt); err != nil {
		return err
	}

	specs := []specification.Specification{
		specification.IncludeDeleted{},
		specification.Filter("code", code),
	}
	if b.Id != uuid.Nil {
		specs = append(specs, specification.ExcludeID{ID: b.Id})
	}
	taken, err := uow.BonusRepository().Count(ctx, specs...)
	if err != nil {
		return err
	}
	if taken > 0 {
		return apperror.Conflict("bonus code %s already exists", code)
	}

	b.Code = code
	b.Name = req.Name
	b.Description = req.Description
	b.Type = bonusType
	b.Reward = reward
	b.WageringMultiplier = req.WageringMultiplier
	b.MinDeposit = req.MinDeposit
	b.MaxClaimsPerUser = req.MaxClaimsPerUser
	b.StartsAt = req.StartsAt.UTC()
	b.EndsAt = nil
	if req.EndsAt != nil {
		endsAt := req.EndsAt.UTC()
		b.EndsAt = &endsAt
	}
	return nil
}

// Create stores a new bonus in draft status.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.BonusRequest) (*entity.Bonus, error) {
	b := &entity.Bonus{Status: entity.BonusDraft}
	if err := m.apply(ctx, uow, b, req); err != nil {
		return nil, err
	}
	if err := uow.BonusRepository().Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.BonusRequest) (*entity.Bonus, error) {
	b, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := m.apply(ctx, uow, b, req); err != nil {
		return nil, err
	}
	if err := uow.BonusRepository().Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (m *Manager) ChangeStatus(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, status string) (*entity.Bonus, error) {
	b, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	from, to := b.Status, entity.BonusStatus(status)
	if !CanTransition(from, to) {
		return nil, apperror.Conflict("cannot change bonus status from %s to %s", from, to)
	}

	b.Status = to
	if err := uow.BonusRepository().Update(ctx, b); err != nil {
		return nil, err
	}

	m.logger.Info("BONUS", "Status changed", map[string]interface{}{"bonus_id": b.Id.String(), "from": from, "to": to})
	m.publisher.PublishBonusStatusChanged(ctx, b.Id, b.Code, string(from), string(to))
	return b, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Bonus, error) {
	b, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.BonusRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return b, nil
}

func (m *Manager) Estimate(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, deposit float64, at time.Time) (*dto.BonusEstimateResponse, error) {
	b, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	credited, eligible, err := EstimateReward(b, deposit, at)
	if err != nil {
		return nil, err
	}
	return &dto.BonusEstimateResponse{Deposit: deposit, Credited: credited, Eligible: eligible}, nil
}
