package implementation_test

import (
	"context"
	"testing"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/repository/implementation"
	"casino-admin-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadRepositoryListsStoredUploads(t *testing.T) {
	db := testutil.NewDB(t)
	repo := implementation.NewUploadRepository(db)
	ctx := context.Background()

	for _, key := range []string{"uploads/a.png", "uploads/b.png"} {
		u := &entity.Upload{Key: key, OriginalName: "x.png", ContentType: "image/png", Size: 10}
		require.NoError(t, repo.Create(ctx, u))
		assert.NotEmpty(t, u.Id)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.ElementsMatch(t, []string{"uploads/a.png", "uploads/b.png"}, []string{all[0].Key, all[1].Key})
}

func TestUtmDailyCountsGroupsByUtcDay(t *testing.T) {
	db := testutil.NewDB(t)
	repo := implementation.NewUtmEventRepository(db)
	ctx := context.Background()

	at := func(day, hour int) time.Time { return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC) }
	events := []model.UtmEvent{
		{Event: "visit", OccurredAt: at(1, 0)},
		{Event: "visit", OccurredAt: at(1, 23)},
		{Event: "register", OccurredAt: at(1, 12)},
		{Event: "visit", OccurredAt: at(2, 9)},
		{Event: "visit", OccurredAt: at(3, 0)},
	}
	for i := range events {
		require.NoError(t, db.Create(&events[i]).Error)
	}

	counts, err := repo.DailyCounts(ctx, at(1, 0), at(3, 0))
	require.NoError(t, err)

	got := map[string]int64{}
	for _, c := range counts {
		got[c.Day+"|"+string(c.Event)] = c.Count
	}
	assert.Equal(t, map[string]int64{
		"2026-03-01|visit":    2,
		"2026-03-01|register": 1,
		"2026-03-02|visit":    1,
	}, got)
}
