package dashboard

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/money"

	"github.com/patrickmn/go-cache"
)

const (
	StatsTTL      = 30 * time.Second
	ActiveWindow  = 30 * 24 * time.Hour
	recentTxLimit = 5
	statsCacheKey = "dashboard"
)

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
	cache  *cache.Cache
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
		cache:  cache.New(StatsTTL, time.Minute),
	}
}

// Invalidate drops the cached stats. Called when tier, bonus or race events
// arrive from the event stream.
func (a *Aggregator) Invalidate() {
	a.cache.Delete(statsCacheKey)
}

// GetStats retrieves dashboard statistics
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time) (*dto.DashboardResponse, error) {
	if cached, ok := a.cache.Get(statsCacheKey); ok {
		return cached.(*dto.DashboardResponse), nil
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	activeSince := now.Add(-ActiveWindow)

	players := uow.PlayerRepository()
	totalPlayers, err := players.Count(ctx)
	if err != nil {
		return nil, err
	}
	activePlayers, err := players.Count(ctx, specification.LoggedInSince{Since: activeSince})
	if err != nil {
		return nil, err
	}
	newToday, err := players.Count(ctx, specification.TimeRange{Field: "registered_at", From: &today})
	if err != nil {
		return nil, err
	}

	txs := uow.TransactionRepository()
	sums := map[entity.TransactionType]float64{}
	for _, t := range []entity.TransactionType{entity.TransactionDeposit, entity.TransactionWithdrawal, entity.TransactionBet, entity.TransactionWin} {
		sum, err := txs.Sum(ctx, t)
		if err != nil {
			return nil, err
		}
		sums[t] = sum
	}

	activeBonuses, err := uow.BonusRepository().Count(ctx, specification.Filter("status", string(entity.BonusActive)))
	if err != nil {
		return nil, err
	}
	runningRaces, err := uow.WagerRaceRepository().Count(ctx, specification.RaceRunning{At: now})
	if err != nil {
		return nil, err
	}

	recent, err := txs.FindAll(ctx,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: recentTxLimit},
	)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardResponse{
		TotalPlayers:       totalPlayers,
		ActivePlayers:      activePlayers,
		NewPlayersToday:    newToday,
		TotalDeposits:      money.RoundCents(sums[entity.TransactionDeposit]),
		TotalWithdrawals:   money.RoundCents(sums[entity.TransactionWithdrawal]),
		GGR:                money.RoundCents(sums[entity.TransactionBet] - sums[entity.TransactionWin]),
		ActiveBonuses:      activeBonuses,
		RunningRaces:       runningRaces,
		RecentTransactions: mapper.TransactionsToResponse(recent),
		GeneratedAt:        now,
	}
	a.cache.SetDefault(statsCacheKey, stats)
	return stats, nil
}

// GetSystemLogs retrieves one page of system logs from the JSON log file and
// the number of matching entries.
func (a *Aggregator) GetSystemLogs(level string, page, limit int) ([]dto.LogListResponse, int64, error) {
	logs, total, err := a.logger.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]dto.LogListResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			Timestamp: l.Time(),
		})
	}
	return res, int64(total), nil
}

// GetLogDetail retrieves a single log entry
func (a *Aggregator) GetLogDetail(logId string) (*dto.LogDetailResponse, error) {
	l, err := a.logger.GetLogById(logId)
	if err != nil {
		return nil, err
	}

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			Timestamp: l.Time(),
		},
		Caller:  l.Caller,
		Details: l.Details,
	}, nil
}
