package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/testutil"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/admin/transaction"
	"casino-admin-be/pkg/admin/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(t *testing.T) (IUserService, *fakeAudit, *gorm.DB) {
	t.Helper()
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	audit := &fakeAudit{}
	svc := NewUserService(factory, log, user.NewManager(log, adminEvents.NewNatsPublisher(nil, log)), transaction.NewManager(log), audit)
	return svc, audit, db
}

func TestGetUsersPaginatesAndSearches(t *testing.T) {
	svc, _, db := newUserService(t)
	for _, name := range []string{"alice", "bob", "carol", "alfred", "dave"} {
		testutil.CreatePlayer(t, db, name, nil)
	}
	ctx := context.Background()

	page, err := svc.GetUsers(ctx, dto.UserListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 2)

	found, err := svc.GetUsers(ctx, dto.UserListRequest{Search: "AL"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, found.Total)

	_, err = svc.GetUsers(ctx, dto.UserListRequest{TierId: "not-a-uuid"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUserTransactionsAndExport(t *testing.T) {
	svc, audit, db := newUserService(t)
	alice := testutil.CreatePlayer(t, db, "alice", nil)
	bob := testutil.CreatePlayer(t, db, "bob", nil)
	now := time.Now().UTC()
	testutil.CreateTransaction(t, db, alice.Id, "deposit", 100, now.Add(-3*time.Hour))
	testutil.CreateTransaction(t, db, alice.Id, "bet", 40, now.Add(-2*time.Hour))
	testutil.CreateTransaction(t, db, bob.Id, "deposit", 75.5, now.Add(-time.Hour))
	ctx := context.Background()

	txs, err := svc.GetUserTransactions(ctx, alice.Id, serverutils.NormalizePage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 2, txs.Total)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportTransactions(ctx, dto.Actor{}, dto.TransactionListRequest{Type: "deposit"}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "id", records[0][0])
	// newest first
	assert.Equal(t, "bob", records[1][2])
	assert.Equal(t, "75.50", records[1][4])
	assert.Equal(t, "alice", records[2][2])

	assert.Equal(t, []string{"transaction.export"}, audit.Actions())

	err = svc.ExportTransactions(ctx, dto.Actor{}, dto.TransactionListRequest{From: "yesterday"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUserStatusAndTierAssignment(t *testing.T) {
	svc, audit, db := newUserService(t)
	ctx := context.Background()
	alice := testutil.CreatePlayer(t, db, "alice", nil)
	gold := testutil.CreateTier(t, db, 3, "Gold", 5000)

	res, err := svc.UpdateUserStatus(ctx, dto.Actor{}, alice.Id, dto.UpdateUserStatusRequest{Status: "suspended", Reason: "  chargeback  "})
	require.NoError(t, err)
	assert.Equal(t, "suspended", res.Status)

	detail, err := svc.GetUserDetail(ctx, alice.Id)
	require.NoError(t, err)
	assert.Equal(t, "chargeback", detail.StatusReason)

	res, err = svc.AssignTier(ctx, dto.Actor{}, alice.Id, dto.UpdateUserTierRequest{TierId: &gold.Id})
	require.NoError(t, err)
	require.NotNil(t, res.TierId)
	assert.Equal(t, gold.Id, *res.TierId)

	detail, err = svc.GetUserDetail(ctx, alice.Id)
	require.NoError(t, err)
	require.NotNil(t, detail.Tier)
	assert.Equal(t, "Gold", detail.Tier.Name)

	missing := uuid.New()
	_, err = svc.AssignTier(ctx, dto.Actor{}, alice.Id, dto.UpdateUserTierRequest{TierId: &missing})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Fields(err), "tier_id")

	res, err = svc.AssignTier(ctx, dto.Actor{}, alice.Id, dto.UpdateUserTierRequest{})
	require.NoError(t, err)
	assert.Nil(t, res.TierId)

	_, err = svc.UpdateUserStatus(ctx, dto.Actor{}, uuid.New(), dto.UpdateUserStatusRequest{Status: "banned"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.Equal(t, []string{"user.status", "user.tier", "user.tier"}, audit.Actions())
}
