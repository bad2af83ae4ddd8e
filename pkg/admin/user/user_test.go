package user

import (
	"context"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps the player events, the rest are ignored.
type recordingPublisher struct {
	statusChanges []string
	tierChanges   []*uuid.UUID
}

func (p *recordingPublisher) PublishAdminCreated(context.Context, uuid.UUID, string, string) {}
func (p *recordingPublisher) PublishPlayerStatusChanged(_ context.Context, _ uuid.UUID, from, to, _ string) {
	p.statusChanges = append(p.statusChanges, from+">"+to)
}
func (p *recordingPublisher) PublishPlayerTierChanged(_ context.Context, _ uuid.UUID, tierId *uuid.UUID) {
	p.tierChanges = append(p.tierChanges, tierId)
}
func (p *recordingPublisher) PublishBonusStatusChanged(context.Context, uuid.UUID, string, string, string) {}
func (p *recordingPublisher) PublishRaceChanged(context.Context, uuid.UUID, string) {}
func (p *recordingPublisher) PublishTierTableChanged(context.Context, uuid.UUID, string) {}
func (p *recordingPublisher) PublishPromotionPublished(context.Context, uuid.UUID, string) {}
func (p *recordingPublisher) PublishApiKeyRevoked(context.Context, uuid.UUID, string) {}

func TestFindAllFilters(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	m := NewManager(logger.NewNopLogger(), &recordingPublisher{})
	ctx := context.Background()

	gold := testutil.CreateTier(t, db, 3, "Gold", 5000)
	testutil.CreatePlayer(t, db, "alice", &gold.Id)
	testutil.CreatePlayer(t, db, "bob", nil)
	banned := testutil.CreatePlayer(t, db, "albert", &gold.Id)
	require.NoError(t, db.Model(banned).Update("status", "banned").Error)

	tests := []struct {
		name  string
		req   dto.UserListRequest
		names []string
	}{
		{"everyone", dto.UserListRequest{}, []string{"alice", "albert", "bob"}},
		{"by tier", dto.UserListRequest{TierId: gold.Id.String()}, []string{"alice", "albert"}},
		{"by status", dto.UserListRequest{Status: "banned"}, []string{"albert"}},
		{"search and tier", dto.UserListRequest{Search: "ALI", TierId: gold.Id.String()}, []string{"alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players, total, err := m.FindAll(ctx, factory.NewUnitOfWork(ctx), tt.req)
			require.NoError(t, err)
			assert.EqualValues(t, len(tt.names), total)
			got := make([]string, 0, len(players))
			for _, p := range players {
				got = append(got, p.Username)
			}
			assert.ElementsMatch(t, tt.names, got)
		})
	}
}

func TestUpdateStatusPublishesOnlyChanges(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	pub := &recordingPublisher{}
	m := NewManager(logger.NewNopLogger(), pub)
	ctx := context.Background()
	alice := testutil.CreatePlayer(t, db, "alice", nil)

	p, from, err := m.UpdateStatus(ctx, factory.NewUnitOfWork(ctx), alice.Id, dto.UpdateUserStatusRequest{Status: "self_excluded", Reason: "player request"})
	require.NoError(t, err)
	assert.Equal(t, "active", from)
	assert.Equal(t, entity.PlayerStatus("self_excluded"), p.Status)

	_, _, err = m.UpdateStatus(ctx, factory.NewUnitOfWork(ctx), alice.Id, dto.UpdateUserStatusRequest{Status: "self_excluded", Reason: "again"})
	require.NoError(t, err)

	assert.Equal(t, []string{"active>self_excluded"}, pub.statusChanges)
}

func TestAssignTier(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	pub := &recordingPublisher{}
	m := NewManager(logger.NewNopLogger(), pub)
	ctx := context.Background()
	alice := testutil.CreatePlayer(t, db, "alice", nil)
	silver := testutil.CreateTier(t, db, 2, "Silver", 1000)

	p, err := m.AssignTier(ctx, factory.NewUnitOfWork(ctx), alice.Id, &silver.Id)
	require.NoError(t, err)
	require.NotNil(t, p.TierId)
	assert.Equal(t, silver.Id, *p.TierId)

	missing := uuid.New()
	_, err = m.AssignTier(ctx, factory.NewUnitOfWork(ctx), alice.Id, &missing)
	assert.Contains(t, apperror.Fields(err), "tier_id")

	p, err = m.AssignTier(ctx, factory.NewUnitOfWork(ctx), alice.Id, nil)
	require.NoError(t, err)
	assert.Nil(t, p.TierId)

	_, err = m.AssignTier(ctx, factory.NewUnitOfWork(ctx), uuid.New(), nil)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.Len(t, pub.tierChanges, 2)
	assert.Equal(t, silver.Id, *pub.tierChanges[0])
	assert.Nil(t, pub.tierChanges[1])
}

func TestTransactionsRequireKnownPlayer(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	m := NewManager(logger.NewNopLogger(), &recordingPublisher{})
	ctx := context.Background()
	alice := testutil.CreatePlayer(t, db, "alice", nil)
	testutil.CreateTransaction(t, db, alice.Id, "deposit", 100, time.Now().UTC().Add(-time.Hour))
	testutil.CreateTransaction(t, db, alice.Id, "bet", 20, time.Now().UTC())

	txs, total, err := m.Transactions(ctx, factory.NewUnitOfWork(ctx), alice.Id, serverutils.NormalizePage(1, 1))
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, txs, 1)
	assert.Equal(t, 20.0, txs[0].Amount)

	_, _, err = m.Transactions(ctx, factory.NewUnitOfWork(ctx), uuid.New(), serverutils.NormalizePage(1, 20))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
