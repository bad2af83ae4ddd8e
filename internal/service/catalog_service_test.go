package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/testutil"
	"casino-admin-be/pkg/admin/bonus"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/admin/promotion"
	"casino-admin-be/pkg/admin/tier"
	"casino-admin-be/pkg/admin/trivia"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierDeleteRefusedWhilePlayersAssigned(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	audit := &fakeAudit{}
	svc := NewTierService(factory, log, tier.NewManager(log, adminEvents.NewNatsPublisher(nil, log)), audit)
	ctx := context.Background()

	bronze, err := svc.CreateTier(ctx, dto.Actor{}, dto.TierRequest{Level: 1, Name: "Bronze", MinPoints: 0})
	require.NoError(t, err)
	silver, err := svc.CreateTier(ctx, dto.Actor{}, dto.TierRequest{Level: 2, Name: "Silver", MinPoints: 1000})
	require.NoError(t, err)

	_, err = svc.CreateTier(ctx, dto.Actor{}, dto.TierRequest{Level: 2, Name: "Gold", MinPoints: 5000})
	assert.ErrorIs(t, err, apperror.ErrConflict, "level taken")

	testutil.CreatePlayer(t, db, "alice", &silver.Id)

	got, err := svc.GetTier(ctx, silver.Id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got.PlayerCount)

	err = svc.DeleteTier(ctx, dto.Actor{}, silver.Id)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	_, err = svc.GetTier(ctx, silver.Id)
	assert.NoError(t, err, "tier is still there")

	require.NoError(t, svc.DeleteTier(ctx, dto.Actor{}, bronze.Id))
	_, err = svc.GetTier(ctx, bronze.Id)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	assert.Equal(t, []string{"tier.create", "tier.create", "tier.delete"}, audit.Actions())
}

func newBonusService(t *testing.T) (IBonusService, *fakeAudit) {
	t.Helper()
	factory, _ := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	audit := &fakeAudit{}
	return NewBonusService(factory, log, bonus.NewManager(log, adminEvents.NewNatsPublisher(nil, log)), audit), audit
}

func depositMatch(code string) dto.BonusRequest {
	return dto.BonusRequest{
		Code:               code,
		Name:               "Welcome match",
		Type:               "deposit_match",
		Reward:             json.RawMessage(`{"percentage":100,"max_amount":200}`),
		WageringMultiplier: 30,
		MinDeposit:         20,
		MaxClaimsPerUser:   1,
		StartsAt:           time.Now().UTC().Add(-time.Hour),
	}
}

func TestBonusStatusMachine(t *testing.T) {
	svc, audit := newBonusService(t)
	ctx := context.Background()

	b, err := svc.CreateBonus(ctx, dto.Actor{}, depositMatch("welcome"))
	require.NoError(t, err)
	assert.Equal(t, "WELCOME", b.Code)
	assert.Equal(t, "draft", b.Status)

	_, err = svc.CreateBonus(ctx, dto.Actor{}, depositMatch("Welcome"))
	assert.ErrorIs(t, err, apperror.ErrConflict, "codes are case-insensitive")

	for _, to := range []string{"active", "paused", "active", "expired"} {
		res, err := svc.ChangeBonusStatus(ctx, dto.Actor{}, b.Id, dto.BonusStatusRequest{Status: to})
		require.NoError(t, err, to)
		assert.Equal(t, to, res.Status)
	}

	_, err = svc.ChangeBonusStatus(ctx, dto.Actor{}, b.Id, dto.BonusStatusRequest{Status: "active"})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	got, err := svc.GetBonus(ctx, b.Id)
	require.NoError(t, err)
	assert.Equal(t, "expired", got.Status)

	assert.Equal(t, []string{"bonus.create", "bonus.status", "bonus.status", "bonus.status", "bonus.status"}, audit.Actions())
}

func TestBonusEstimate(t *testing.T) {
	svc, _ := newBonusService(t)
	ctx := context.Background()

	b, err := svc.CreateBonus(ctx, dto.Actor{}, depositMatch("match100"))
	require.NoError(t, err)

	tests := []struct {
		deposit  float64
		credited float64
		eligible bool
	}{
		{50, 50, true},
		{500, 200, true},
		{10, 0, false},
	}
	for _, tt := range tests {
		res, err := svc.EstimateBonus(ctx, b.Id, dto.BonusEstimateRequest{Deposit: tt.deposit})
		require.NoError(t, err)
		assert.Equal(t, tt.eligible, res.Eligible, "deposit %v", tt.deposit)
		assert.Equal(t, tt.credited, res.Credited, "deposit %v", tt.deposit)
	}

	_, err = svc.EstimateBonus(ctx, uuid.New(), dto.BonusEstimateRequest{Deposit: 50})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestPromotionSlugAndBonusChecks(t *testing.T) {
	factory, _ := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	events := adminEvents.NewNatsPublisher(nil, log)
	svc := NewPromotionService(factory, log, promotion.NewManager(log, events), &fakeAudit{})
	bonuses := NewBonusService(factory, log, bonus.NewManager(log, events), &fakeAudit{})
	ctx := context.Background()
	now := time.Now().UTC()

	req := dto.PromotionRequest{Title: "Summer Cash Drop!", StartsAt: now, EndsAt: now.Add(24 * time.Hour)}
	first, err := svc.CreatePromotion(ctx, dto.Actor{}, req)
	require.NoError(t, err)
	assert.Equal(t, "summer-cash-drop", first.Slug)

	_, err = svc.CreatePromotion(ctx, dto.Actor{}, req)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	req.Slug = "summer-2"
	unknown := uuid.New()
	req.BonusId = &unknown
	_, err = svc.CreatePromotion(ctx, dto.Actor{}, req)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Fields(err), "bonus_id")

	b, err := bonuses.CreateBonus(ctx, dto.Actor{}, depositMatch("summer"))
	require.NoError(t, err)
	req.BonusId = &b.Id
	linked, err := svc.CreatePromotion(ctx, dto.Actor{}, req)
	require.NoError(t, err)
	assert.Equal(t, "summer-2", linked.Slug)

	// renaming onto an existing slug
	req.Slug = "summer-cash-drop"
	_, err = svc.UpdatePromotion(ctx, dto.Actor{}, linked.Id, req)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestTriviaImportKeepsGoodRows(t *testing.T) {
	factory, db := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	audit := &fakeAudit{}
	svc := NewTriviaService(factory, log, trivia.NewManager(log), audit)
	ctx := context.Background()

	file := `{"questions":[
		{"question":"Capital of Malta?","options":["Valletta","Mdina"],"correct_index":0,"difficulty":"easy"},
		{"question":"Broken","options":["A","a"],"correct_index":3,"difficulty":"easy"},
		{"question":"Reels on a classic slot?","options":["3","5","7"],"correct_index":0,"difficulty":"medium","reward_amount":2.5}
	]}`

	res, err := svc.ImportQuestions(ctx, dto.Actor{}, []byte(file))
	require.NoError(t, err)
	assert.Equal(t, 2, res.CreatedCount)
	assert.Equal(t, 1, res.FailedCount)
	require.Len(t, res.Results, 3)
	assert.True(t, res.Results[0].Success)
	assert.False(t, res.Results[1].Success)
	assert.NotEmpty(t, res.Results[1].Error)
	assert.True(t, res.Results[2].Success)

	var stored int64
	require.NoError(t, db.Model(&model.TriviaQuestion{}).Count(&stored).Error)
	assert.EqualValues(t, 2, stored)

	_, err = svc.ImportQuestions(ctx, dto.Actor{}, []byte(`{"questions":[{"question":"x"}]}`))
	assert.ErrorIs(t, err, apperror.ErrValidation, "schema errors reject the whole file")
}
