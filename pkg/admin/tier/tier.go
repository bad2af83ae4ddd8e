package tier

import (
	"fmt"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
)

// ValidateOrdering checks that min_points strictly increases with level
// across candidate and the other existing tiers.
func ValidateOrdering(candidate *entity.Tier, others []*entity.Tier) error {
	for _, o := range others {
		if o.Id == candidate.Id {
			continue
		}
		if o.Level < candidate.Level && o.MinPoints >= candidate.MinPoints {
			return apperror.Field("min_points", fmt.Sprintf("must be greater than %d (level %d %s)", o.MinPoints, o.Level, o.Name))
		}
		if o.Level > candidate.Level && o.MinPoints <= candidate.MinPoints {
			return apperror.Field("min_points", fmt.Sprintf("must be less than %d (level %d %s)", o.MinPoints, o.Level, o.Name))
		}
	}
	return nil
}
