package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/testutil"
	"casino-admin-be/pkg/admin/dashboard"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsAreCachedUntilInvalidated(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	aggregator := dashboard.NewAggregator(log)
	svc := NewDashboardService(factory, log, aggregator)
	listener := NewEventListener(nil, aggregator, log)
	ctx := context.Background()
	now := time.Now().UTC()

	alice := testutil.CreatePlayer(t, db, "alice", nil)
	testutil.CreatePlayer(t, db, "bob", nil)
	testutil.CreateTransaction(t, db, alice.Id, "deposit", 200, now.Add(-time.Hour))
	testutil.CreateTransaction(t, db, alice.Id, "withdrawal", 50, now.Add(-time.Hour))
	testutil.CreateTransaction(t, db, alice.Id, "bet", 120, now.Add(-time.Hour))
	testutil.CreateTransaction(t, db, alice.Id, "win", 45.5, now.Add(-time.Hour))

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalPlayers)
	assert.Equal(t, 200.0, stats.TotalDeposits)
	assert.Equal(t, 50.0, stats.TotalWithdrawals)
	assert.Equal(t, 74.5, stats.GGR)
	assert.Len(t, stats.RecentTransactions, 4)

	testutil.CreateTransaction(t, db, alice.Id, "deposit", 100, now)

	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, stats.TotalDeposits, "served from cache")

	// unrelated events keep the cache
	require.NoError(t, listener.HandleEvent(ctx, events.BaseEvent{Type: "SOMETHING_ELSE"}))
	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 200.0, stats.TotalDeposits)

	require.NoError(t, listener.HandleEvent(ctx, events.BaseEvent{Type: adminEvents.PlayerStatusChanged}))
	stats, err = svc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 300.0, stats.TotalDeposits)
}

func TestSystemLogsArePaginated(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	fileLog := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))
	svc := NewDashboardService(factory, fileLog, dashboard.NewAggregator(fileLog))
	ctx := context.Background()

	fileLog.Info("AUTH", "login", nil)
	fileLog.Error("BONUS", "first failure", nil)
	fileLog.Error("BONUS", "second failure", nil)

	res, err := svc.GetSystemLogs(ctx, serverutils.NormalizePage(1, 1), "error")
	require.NoError(t, err)
	assert.EqualValues(t, 2, res.Total)
	assert.Equal(t, 1, res.Limit)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "second failure", res.Items[0].Message)
	assert.False(t, res.Items[0].Timestamp.IsZero())

	detail, err := svc.GetLogDetail(ctx, res.Items[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "BONUS", detail.Module)

	_, err = svc.GetLogDetail(ctx, "missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
