package dashboard

import (
	"context"
	"testing"
	"time"

	"casino-admin-be/internal/model"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestGetStatsCountsPlayersBonusesAndRaces(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	agg := NewAggregator(logger.NewNopLogger())
	ctx := context.Background()
	now := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

	player := func(name string, registered time.Time, lastLogin *time.Time) *model.Player {
		p := testutil.CreatePlayer(t, db, name, nil)
		require.NoError(t, db.Model(p).Updates(map[string]interface{}{"registered_at": registered, "last_login_at": lastLogin}).Error)
		return p
	}
	recentLogin := now.Add(-24 * time.Hour)
	staleLogin := now.Add(-45 * 24 * time.Hour)
	active := player("active", now.Add(-90*24*time.Hour), &recentLogin)
	player("stale", now.Add(-90*24*time.Hour), &staleLogin)
	player("fresh", now.Add(-2*time.Hour), nil)

	for code, status := range map[string]string{"LIVE1": "active", "LIVE2": "active", "DRAFT": "draft"} {
		b := &model.Bonus{Code: code, Name: code, Type: "fixed_cash", Reward: datatypes.JSON(`{"amount":5}`), Status: status, StartsAt: now}
		require.NoError(t, db.Create(b).Error)
	}

	prizes := datatypes.JSONSlice[model.RacePrizeJSON]{{Rank: 1, Amount: 100}}
	races := []*model.WagerRace{
		{Name: "running", StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Prizes: prizes},
		{Name: "finished", StartsAt: now.Add(-48 * time.Hour), EndsAt: now.Add(-24 * time.Hour), Prizes: prizes},
		{Name: "upcoming", StartsAt: now.Add(time.Hour), EndsAt: now.Add(48 * time.Hour), Prizes: prizes},
		{Name: "cancelled", StartsAt: now.Add(-time.Hour), EndsAt: now.Add(time.Hour), Prizes: prizes, Cancelled: true},
	}
	for _, r := range races {
		require.NoError(t, db.Create(r).Error)
	}

	for i := 0; i < 7; i++ {
		testutil.CreateTransaction(t, db, active.Id, "bet", 10, now.Add(-time.Duration(i)*time.Minute))
	}

	stats, err := agg.GetStats(ctx, factory.NewUnitOfWork(ctx), now)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalPlayers)
	assert.EqualValues(t, 1, stats.ActivePlayers)
	assert.EqualValues(t, 1, stats.NewPlayersToday)
	assert.EqualValues(t, 2, stats.ActiveBonuses)
	assert.EqualValues(t, 1, stats.RunningRaces)
	assert.Equal(t, 70.0, stats.GGR)
	assert.Len(t, stats.RecentTransactions, recentTxLimit)
	assert.Equal(t, now, stats.GeneratedAt)

	testutil.CreatePlayer(t, db, "late", nil)
	cached, err := agg.GetStats(ctx, factory.NewUnitOfWork(ctx), now)
	require.NoError(t, err)
	assert.Same(t, stats, cached)

	agg.Invalidate()
	fresher, err := agg.GetStats(ctx, factory.NewUnitOfWork(ctx), now)
	require.NoError(t, err)
	assert.EqualValues(t, 4, fresher.TotalPlayers)
}
