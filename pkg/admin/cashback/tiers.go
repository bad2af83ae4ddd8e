package cashback

import (
	"fmt"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/pkg/admin/money"
)

const MaxTiers = 20

// ValidateTiers checks a cashback tier table. Tiers must be ordered by
// min_loss, must not overlap, and only the last tier may be open ended.
func ValidateTiers(tiers []entity.CashbackTier) error {
	if len(tiers) == 0 {
		return apperror.Field("tiers", "must contain at least 1 tier")
	}
	if len(tiers) > MaxTiers {
		return apperror.Field("tiers", fmt.Sprintf("must contain at most %d tiers", MaxTiers))
	}

	fields := map[string]string{}
	for i, t := range tiers {
		key := func(f string) string { return fmt.Sprintf("tiers[%d].%s", i, f) }

		if t.MinLoss < 0 {
			fields[key("min_loss")] = "must be greater than or equal to 0"
		}
		if t.MaxLoss != nil && *t.MaxLoss <= t.MinLoss {
			fields[key("max_loss")] = "must be greater than min_loss"
		}
		if t.Percentage <= 0 || t.Percentage > 100 {
			fields[key("percentage")] = "must be greater than 0 and at most 100"
		}
		if t.MaxPayout < 0 {
			fields[key("max_payout")] = "must be greater than or equal to 0"
		}

		if i == 0 {
			continue
		}
		prev := tiers[i-1]
		switch {
		case prev.MaxLoss == nil:
			fields[fmt.Sprintf("tiers[%d].max_loss", i-1)] = "only the last tier may be open ended"
		case t.MinLoss <= prev.MinLoss:
			fields[key("min_loss")] = "tiers must be ordered by min_loss ascending"
		case t.MinLoss < *prev.MaxLoss:
			fields[key("min_loss")] = fmt.Sprintf("overlaps tier %d", i-1)
		}
	}

	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}

// Match is the result of previewing a net loss against a tier table.
// TierIndex is -1 when no tier applies.
type Match struct {
	TierIndex  int
	Percentage float64
	Cashback   float64
}

// Preview picks the last tier whose range holds netLoss and computes the
// payout, rounded to cents and capped by the tier's max payout.
func Preview(tiers []entity.CashbackTier, netLoss float64) Match {
	none := Match{TierIndex: -1}
	if netLoss <= 0 {
		return none
	}

	idx := -1
	for i, t := range tiers {
		if t.MinLoss > netLoss {
			continue
		}
		if t.MaxLoss != nil && netLoss >= *t.MaxLoss {
			continue
		}
		idx = i
	}
	if idx < 0 {
		return none
	}

	tier := tiers[idx]
	payout := money.RoundCents(netLoss * tier.Percentage / 100)
	if tier.MaxPayout > 0 && payout > tier.MaxPayout {
		payout = tier.MaxPayout
	}
	return Match{TierIndex: idx, Percentage: tier.Percentage, Cashback: payout}
}
