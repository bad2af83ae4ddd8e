package promotion

import (
	"strings"
	"testing"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Welcome Bonus":             "welcome-bonus",
		"  100% Match -- Friday!! ": "100-match-friday",
		"Già Vinto":                 "gi-vinto",
		"UPPER_case":                "upper-case",
		"---":                       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}

	long := Slugify(strings.Repeat("ab ", 200))
	assert.LessOrEqual(t, len(long), maxSlugLen)
	assert.False(t, strings.HasSuffix(long, "-"))
}

func TestResolveSlug(t *testing.T) {
	slug, err := ResolveSlug("", "Summer Races 2026")
	require.NoError(t, err)
	assert.Equal(t, "summer-races-2026", slug)

	slug, err = ResolveSlug("Custom Slug", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", slug)

	_, err = ResolveSlug("", "!!!")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, apperror.Fields(err), "title")

	_, err = ResolveSlug("???", "Fine title")
	assert.Contains(t, apperror.Fields(err), "slug")
}

func TestPromotionIsLive(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	p := &entity.Promotion{Status: entity.PromotionPublished, StartsAt: start, EndsAt: end}

	assert.True(t, p.IsLive(start))
	assert.True(t, p.IsLive(end.Add(-time.Second)))
	assert.False(t, p.IsLive(end))
	assert.False(t, p.IsLive(start.Add(-time.Second)))

	p.Status = entity.PromotionDraft
	assert.False(t, p.IsLive(start.Add(time.Hour)))
}
