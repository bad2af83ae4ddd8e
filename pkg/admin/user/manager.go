package user

import (
	"context"
	"strings"

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

// Manager handles player (user) admin operations
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

// NewManager creates a new user manager
func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// FindAll retrieves players with pagination, search and filters
func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UserListRequest) ([]*entity.Player, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	filters := []specification.Specification{
		specification.Search{Fields: []string{"username", "email"}, Query: req.Search},
	}
	if req.Status != "" {
		filters = append(filters, specification.Filter("status", req.Status))
	}
	if req.TierId != "" {
		tierId, err := serverutils.ParseUUIDParam("tier_id", req.TierId)
		if err != nil {
			return nil, 0, err
		}
		filters = append(filters, specification.ByTier{TierID: *tierId})
	}

	total, err := uow.PlayerRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	players, err := uow.PlayerRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "registered_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

// FindOne retrieves a single player by ID
func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Player, error) {
	p, err := uow.PlayerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("user")
	}
	return p, nil
}

// Detail loads a player with its tier and completed transaction totals.
func (m *Manager) Detail(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Player, *entity.Tier, *entity.PlayerTotals, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, nil, nil, err
	}

	var tier *entity.Tier
	if p.TierId != nil {
		tier, err = uow.TierRepository().FindOne(ctx, specification.ByID{ID: *p.TierId})
		if err != nil {
			return nil, nil, nil, err
		}
	}

	totals, err := uow.PlayerRepository().Totals(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return p, tier, totals, nil
}

// UpdateStatus changes the player status and records the reason.
func (m *Manager) UpdateStatus(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateUserStatusRequest) (*entity.Player, string, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, "", err
	}

	from := p.Status
	p.Status = entity.PlayerStatus(req.Status)
	p.StatusReason = strings.TrimSpace(req.Reason)
	if err := uow.PlayerRepository().Update(ctx, p); err != nil {
		return nil, "", err
	}

	m.logger.Info("USER", "Updated user status", map[string]interface{}{
		"userId": id.String(),
		"from":   from,
		"to":     p.Status,
	})
	if from != p.Status {
		m.publisher.PublishPlayerStatusChanged(ctx, id, string(from), string(p.Status), p.StatusReason)
	}
	return p, string(from), nil
}

// AssignTier sets or clears (nil) the player's tier.
func (m *Manager) AssignTier(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, tierId *uuid.UUID) (*entity.Player, error) {
	p, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if tierId != nil {
		tier, err := uow.TierRepository().FindOne(ctx, specification.ByID{ID: *tierId})
		if err != nil {
			return nil, err
		}
		if tier == nil {
			return nil, apperror.Field("tier_id", "tier does not exist")
		}
	}

	p.TierId = tierId
	if err := uow.PlayerRepository().Update(ctx, p); err != nil {
		return nil, err
	}
	m.publisher.PublishPlayerTierChanged(ctx, id, tierId)
	return p, nil
}

// Transactions lists one player's transactions, newest first.
func (m *Manager) Transactions(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, page serverutils.Page) ([]*entity.Transaction, int64, error) {
	if _, err := m.FindOne(ctx, uow, id); err != nil {
		return nil, 0, err
	}

	filter := specification.UserOwnedBy{UserID: id}
	total, err := uow.TransactionRepository().Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	txs, err := uow.TransactionRepository().FindAll(ctx, filter,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}
