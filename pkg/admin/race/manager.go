package race

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	adminEvents "casino-admin-be/pkg/admin/events"

	"github.com/google/uuid"
)

// Manager handles wager race operations
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

// statusFilter translates a derived status into a query at time now.
func statusFilter(status string, now time.Time) ([]specification.Specification, error) {
	now = now.UTC()
	notCancelled := specification.Filter("cancelled", false)
	switch entity.RaceStatus(status) {
	case "":
		return nil, nil
	case entity.RaceScheduled:
		return []specification.Specification{notCancelled, specification.Compare{Field: "starts_at", Op: ">", Value: now}}, nil
	case entity.RaceRunning:
		return []specification.Specification{specification.RaceRunning{At: now}}, nil
	case entity.RaceFinished:
		return []specification.Specification{notCancelled, specification.Compare{Field: "ends_at", Op: "<=", Value: now}}, nil
	case entity.RaceCancelled:
		return []specification.Specification{specification.Filter("cancelled", true)}, nil
	}
	return nil, apperror.Field("status", "must be one of [scheduled running finished cancelled]")
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.RaceListRequest, now time.Time) ([]*entity.WagerRace, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	filters, err := statusFilter(req.Status, now)
	if err != nil {
		return nil, 0, err
	}
	filters = append(filters, specification.Search{Fields: []string{"name"}, Query: req.Search})

	total, err := uow.WagerRaceRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	races, err := uow.WagerRaceRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "starts_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return races, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.WagerRace, error) {
	r, err := uow.WagerRaceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, apperror.NotFound("race")
	}
	return r, nil
}

func apply(r *entity.WagerRace, req dto.RaceRequest) error {
	if err := ValidateWindow(req.StartsAt, req.EndsAt); err != nil {
		return err
	}
	in := make([]entity.RacePrize, 0, len(req.Prizes))
	for _, p := range req.Prizes {
		in = append(in, entity.RacePrize{Rank: p.Rank, Amount: p.Amount})
	}
	prizes, err := NormalizePrizes(in)
	if err != nil {
		return err
	}

	r.Name = req.Name
	r.Description = req.Description
	r.StartsAt = req.StartsAt.UTC()
	r.EndsAt = req.EndsAt.UTC()
	r.MinWager = req.MinWager
	r.Prizes = prizes
	r.GameFilter = append([]string{}, req.GameFilter...)
	r.Cancelled = req.Cancelled
	return nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.RaceRequest) (*entity.WagerRace, error) {
	r := &entity.WagerRace{}
	if err := apply(r, req); err != nil {
		return nil, err
	}
	if err := uow.WagerRaceRepository().Create(ctx, r); err != nil {
		return nil, err
	}
	m.publisher.PublishRaceChanged(ctx, r.Id, "created")
	return r, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.RaceRequest) (*entity.WagerRace, error) {
	r, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := apply(r, req); err != nil {
		return nil, err
	}
	if err := uow.WagerRaceRepository().Update(ctx, r); err != nil {
		return nil, err
	}
	m.publisher.PublishRaceChanged(ctx, r.Id, "updated")
	return r, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.WagerRace, error) {
	r, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.WagerRaceRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	m.publisher.PublishRaceChanged(ctx, r.Id, "deleted")
	return r, nil
}

func (m *Manager) Leaderboard(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, limit int, now time.Time) (*dto.LeaderboardResponse, error) {
	r, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	totals, err := uow.TransactionRepository().WagerTotals(ctx, r.StartsAt, r.EndsAt, r.GameFilter)
	if err != nil {
		return nil, err
	}

	return &dto.LeaderboardResponse{
		RaceId:  r.Id,
		Status:  string(r.StatusAt(now)),
		Entries: Rank(totals, r.Prizes, r.MinWager, limit),
	}, nil
}
