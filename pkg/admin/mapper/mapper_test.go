package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"casino-admin-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaceToResponseDerivesStatusAndPool(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	r := &entity.WagerRace{
		Id:       uuid.New(),
		StartsAt: start,
		EndsAt:   start.AddDate(0, 0, 7),
		Prizes:   []entity.RacePrize{{Rank: 1, Amount: 500}, {Rank: 2, Amount: 250.5}},
	}

	res := RaceToResponse(r, start.Add(time.Hour))
	assert.Equal(t, "running", res.Status)
	assert.Equal(t, 750.5, res.PrizePool)
	assert.NotNil(t, res.GameFilter)

	r.Cancelled = true
	assert.Equal(t, "cancelled", RaceToResponse(r, start.Add(time.Hour)).Status)
}

func TestApiKeyResponseOmitsHash(t *testing.T) {
	k := &entity.ApiKey{Id: uuid.New(), Name: "landing", Prefix: "ck_live_ab12", KeyHash: "secret-hash"}
	raw, err := json.Marshal(ApiKeyToResponse(k))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.Contains(t, string(raw), `"prefix":"ck_live_ab12"`)
}

func TestListMappersNeverReturnNil(t *testing.T) {
	assert.NotNil(t, BonusesToResponse(nil))
	assert.NotNil(t, UsersToListResponse(nil))
	assert.Len(t, AdminsToResponse([]*entity.Admin{{Role: &entity.Role{Name: "Ops"}}}), 1)
}
