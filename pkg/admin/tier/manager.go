package tier

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	adminEvents "casino-admin-be/pkg/admin/events"

	"github.com/google/uuid"
)

// Manager handles VIP tier operations
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

// FindAll returns every tier ordered by level. The table is small, so it is not paginated.
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.Tier, error) {
	return uow.TierRepository().FindAll(ctx, specification.OrderBy{Field: "level"})
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Tier, error) {
	t, err := uow.TierRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NotFound("tier")
	}
	return t, nil
}

func (m *Manager) PlayerCount(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (int64, error) {
	return uow.PlayerRepository().Count(ctx, specification.ByTier{TierID: id})
}

func (m *Manager) apply(ctx context.Context, uow unitofwork.UnitOfWork, t *entity.Tier, req dto.TierRequest) error {
	t.Level = req.Level
	t.Name = req.Name
	t.MinPoints = req.MinPoints
	t.CashbackBonusPct = req.CashbackBonusPct
	t.WithdrawalLimit = req.WithdrawalLimit
	t.Benefits = append([]string{}, req.Benefits...)
	t.Color = req.Color

	others, err := uow.TierRepository().FindAll(ctx)
	if err != nil {
		return err
	}
	for _, o := range others {
		if o.Id != t.Id && o.Level == t.Level {
			return apperror.Conflict("tier level %d already exists", t.Level)
		}
	}
	return ValidateOrdering(t, others)
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.TierRequest) (*entity.Tier, error) {
	t := &entity.Tier{}
	if err := m.apply(ctx, uow, t, req); err != nil {
		return nil, err
	}
	if err := uow.TierRepository().Create(ctx, t); err != nil {
		return nil, err
	}
	m.publisher.PublishTierTableChanged(ctx, t.Id, "created")
	return t, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.TierRequest) (*entity.Tier, error) {
	t, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := m.apply(ctx, uow, t, req); err != nil {
		return nil, err
	}
	if err := uow.TierRepository().Update(ctx, t); err != nil {
		return nil, err
	}
	m.publisher.PublishTierTableChanged(ctx, t.Id, "updated")
	return t, nil
}

// Delete refuses while players are still assigned to the tier.
func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Tier, error) {
	t, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	assigned, err := m.PlayerCount(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if assigned > 0 {
		return nil, apperror.Conflict("tier %s still has %d assigned players", t.Name, assigned)
	}
	if err := uow.TierRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	m.publisher.PublishTierTableChanged(ctx, t.Id, "deleted")
	return t, nil
}
