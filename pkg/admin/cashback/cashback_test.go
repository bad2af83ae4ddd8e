package cashback

import (
	"testing"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func standardTable() []entity.CashbackTier {
	return []entity.CashbackTier{
		{MinLoss: 0, MaxLoss: f(100), Percentage: 5},
		{MinLoss: 100, MaxLoss: f(1000), Percentage: 10, MaxPayout: 50},
		{MinLoss: 1000, Percentage: 15, MaxPayout: 500},
	}
}

func TestValidateTiers(t *testing.T) {
	tests := []struct {
		name      string
		tiers     []entity.CashbackTier
		wantField string
	}{
		{"standard table", standardTable(), ""},
		{"single open tier", []entity.CashbackTier{{MinLoss: 0, Percentage: 10}}, ""},
		{"gap between tiers allowed", []entity.CashbackTier{
			{MinLoss: 0, MaxLoss: f(100), Percentage: 5},
			{MinLoss: 200, Percentage: 10},
		}, ""},
		{"empty", nil, "tiers"},
		{"max loss not above min", []entity.CashbackTier{{MinLoss: 100, MaxLoss: f(100), Percentage: 5}}, "tiers[0].max_loss"},
		{"zero percentage", []entity.CashbackTier{{MinLoss: 0, Percentage: 0}}, "tiers[0].percentage"},
		{"percentage over 100", []entity.CashbackTier{{MinLoss: 0, Percentage: 101}}, "tiers[0].percentage"},
		{"negative payout cap", []entity.CashbackTier{{MinLoss: 0, Percentage: 5, MaxPayout: -1}}, "tiers[0].max_payout"},
		{"negative min loss", []entity.CashbackTier{{MinLoss: -5, Percentage: 5}}, "tiers[0].min_loss"},
		{"open tier not last", []entity.CashbackTier{
			{MinLoss: 0, Percentage: 5},
			{MinLoss: 100, Percentage: 10},
		}, "tiers[0].max_loss"},
		{"overlap", []entity.CashbackTier{
			{MinLoss: 0, MaxLoss: f(200), Percentage: 5},
			{MinLoss: 100, Percentage: 10},
		}, "tiers[1].min_loss"},
		{"out of order", []entity.CashbackTier{
			{MinLoss: 500, MaxLoss: f(600), Percentage: 5},
			{MinLoss: 100, Percentage: 10},
		}, "tiers[1].min_loss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTiers(tt.tiers)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperror.ErrValidation)
			assert.Contains(t, apperror.Fields(err), tt.wantField)
		})
	}
}

func TestValidateTiersLimit(t *testing.T) {
	tiers := make([]entity.CashbackTier, 0, MaxTiers+1)
	for i := 0; i <= MaxTiers; i++ {
		tiers = append(tiers, entity.CashbackTier{MinLoss: float64(i * 10), MaxLoss: f(float64(i*10 + 10)), Percentage: 1})
	}
	assert.NoError(t, ValidateTiers(tiers[:MaxTiers]))
	assert.ErrorIs(t, ValidateTiers(tiers), apperror.ErrValidation)
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name    string
		netLoss float64
		want    Match
	}{
		{"no loss", 0, Match{TierIndex: -1}},
		{"net win", -50, Match{TierIndex: -1}},
		{"first tier", 40, Match{TierIndex: 0, Percentage: 5, Cashback: 2}},
		{"boundary belongs to next tier", 100, Match{TierIndex: 1, Percentage: 10, Cashback: 10}},
		{"capped by max payout", 900, Match{TierIndex: 1, Percentage: 10, Cashback: 50}},
		{"open ended tier", 2000, Match{TierIndex: 2, Percentage: 15, Cashback: 300}},
		{"open ended tier capped", 10000, Match{TierIndex: 2, Percentage: 15, Cashback: 500}},
		{"rounded to cents", 33.39, Match{TierIndex: 0, Percentage: 5, Cashback: 1.67}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Preview(standardTable(), tt.netLoss)
			assert.Equal(t, tt.want.TierIndex, got.TierIndex)
			assert.Equal(t, tt.want.Percentage, got.Percentage)
			assert.InDelta(t, tt.want.Cashback, got.Cashback, 0.0001)
		})
	}
}

func TestPreviewGapMatchesNothing(t *testing.T) {
	tiers := []entity.CashbackTier{
		{MinLoss: 0, MaxLoss: f(100), Percentage: 5},
		{MinLoss: 200, Percentage: 10},
	}
	assert.Equal(t, -1, Preview(tiers, 150).TierIndex)
	assert.Equal(t, 1, Preview(tiers, 250).TierIndex)
}
