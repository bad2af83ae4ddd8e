package banner

import (
	"testing"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchedule(t *testing.T) {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	assert.NoError(t, ValidateSchedule(nil, nil))
	assert.NoError(t, ValidateSchedule(&start, nil))
	assert.NoError(t, ValidateSchedule(nil, &end))
	assert.NoError(t, ValidateSchedule(&start, &end))
	assert.ErrorIs(t, ValidateSchedule(&end, &start), apperror.ErrValidation)
	assert.ErrorIs(t, ValidateSchedule(&start, &start), apperror.ErrValidation)
}

func TestApplyKeepsActiveFlagWhenOmitted(t *testing.T) {
	b := &entity.Banner{IsActive: false}
	loc := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2026, 7, 1, 2, 0, 0, 0, loc)

	err := apply(b, dto.BannerRequest{
		Title:     "Summer",
		ImageURL:  "https://cdn.example.com/a.png",
		Placement: "lobby",
		StartsAt:  &start,
	})
	require.NoError(t, err)
	assert.False(t, b.IsActive)
	assert.Equal(t, entity.PlacementLobby, b.Placement)
	require.NotNil(t, b.StartsAt)
	assert.Equal(t, time.UTC, b.StartsAt.Location())
	assert.Equal(t, 0, b.StartsAt.Hour())
}

func TestBannerIsLive(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Hour)

	assert.True(t, (&entity.Banner{IsActive: true}).IsLive(now))
	assert.False(t, (&entity.Banner{IsActive: false}).IsLive(now))
	assert.False(t, (&entity.Banner{IsActive: true, StartsAt: &later}).IsLive(now))
	assert.False(t, (&entity.Banner{IsActive: true, EndsAt: &earlier}).IsLive(now))
	assert.True(t, (&entity.Banner{IsActive: true, StartsAt: &earlier, EndsAt: &later}).IsLive(now))
}
