package race

import (
	"fmt"
	"sort"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/pkg/admin/money"
)

const MaxPrizes = 100

// NormalizePrizes sorts prizes by rank and checks that ranks run 1..n with
// positive amounts that never increase with rank.
func NormalizePrizes(in []entity.RacePrize) ([]entity.RacePrize, error) {
	if len(in) == 0 {
		return nil, apperror.Field("prizes", "must contain at least 1 prize")
	}
	if len(in) > MaxPrizes {
		return nil, apperror.Field("prizes", fmt.Sprintf("must contain at most %d prizes", MaxPrizes))
	}

	prizes := append([]entity.RacePrize{}, in...)
	sort.SliceStable(prizes, func(i, j int) bool { return prizes[i].Rank < prizes[j].Rank })

	fields := map[string]string{}
	for i, p := range prizes {
		if p.Rank != i+1 {
			fields[fmt.Sprintf("prizes[%d].rank", i)] = fmt.Sprintf("ranks must run 1..%d without gaps or duplicates", len(prizes))
			break
		}
		if p.Amount <= 0 {
			fields[fmt.Sprintf("prizes[%d].amount", i)] = "must be greater than 0"
		} else if i > 0 && p.Amount > prizes[i-1].Amount {
			fields[fmt.Sprintf("prizes[%d].amount", i)] = fmt.Sprintf("must not exceed the rank %d prize", prizes[i-1].Rank)
		}
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}
	return prizes, nil
}

func ValidateWindow(startsAt, endsAt time.Time) error {
	if !endsAt.After(startsAt) {
		return apperror.Field("ends_at", "must be after starts_at")
	}
	return nil
}

func PrizePool(prizes []entity.RacePrize) float64 {
	var total float64
	for _, p := range prizes {
		total += p.Amount
	}
	return money.RoundCents(total)
}

// Rank orders wager totals for a race: players under minWager are dropped,
// the rest sorted by total descending with ties broken by user id. Prizes
// attach by rank.
func Rank(totals []entity.WagerTotal, prizes []entity.RacePrize, minWager float64, limit int) []dto.LeaderboardEntry {
	eligible := make([]entity.WagerTotal, 0, len(totals))
	for _, t := range totals {
		if t.Total < minWager || t.Total <= 0 {
			continue
		}
		eligible = append(eligible, t)
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].Total != eligible[j].Total {
			return eligible[i].Total > eligible[j].Total
		}
		return eligible[i].UserId.String() < eligible[j].UserId.String()
	})

	if limit > 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}

	prizeByRank := make(map[int]float64, len(prizes))
	for _, p := range prizes {
		prizeByRank[p.Rank] = p.Amount
	}

	entries := make([]dto.LeaderboardEntry, 0, len(eligible))
	for i, t := range eligible {
		rank := i + 1
		entries = append(entries, dto.LeaderboardEntry{
			Rank:     rank,
			UserId:   t.UserId,
			Username: t.Username,
			Wagered:  money.RoundCents(t.Total),
			Prize:    prizeByRank[rank],
		})
	}
	return entries
}
