package tier

import (
	"testing"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ladder() []*entity.Tier {
	return []*entity.Tier{
		{Id: uuid.New(), Level: 1, Name: "Bronze", MinPoints: 0},
		{Id: uuid.New(), Level: 2, Name: "Silver", MinPoints: 1000},
		{Id: uuid.New(), Level: 4, Name: "Platinum", MinPoints: 10000},
	}
}

func TestValidateOrdering(t *testing.T) {
	existing := ladder()

	tests := []struct {
		name      string
		candidate *entity.Tier
		wantErr   bool
	}{
		{"fits between neighbours", &entity.Tier{Level: 3, MinPoints: 5000}, false},
		{"new top tier", &entity.Tier{Level: 5, MinPoints: 50000}, false},
		{"equal to lower neighbour", &entity.Tier{Level: 3, MinPoints: 1000}, true},
		{"equal to upper neighbour", &entity.Tier{Level: 3, MinPoints: 10000}, true},
		{"above upper neighbour", &entity.Tier{Level: 3, MinPoints: 20000}, true},
		{"top tier below existing", &entity.Tier{Level: 5, MinPoints: 9000}, true},
		{"updating itself in place", &entity.Tier{Id: existing[1].Id, Level: 2, MinPoints: 2000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrdering(tt.candidate, existing)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperror.ErrValidation)
			assert.Contains(t, apperror.Fields(err), "min_points")
		})
	}
}
