package contract

import (
	"context"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PlayerRepository interface {
	CrudRepository[entity.Player]
	Totals(ctx context.Context, userId uuid.UUID) (*entity.PlayerTotals, error)
}

type TransactionRepository interface {
	CrudRepository[entity.Transaction]
	// Sum adds completed amounts of one type across the matching rows.
	Sum(ctx context.Context, txType entity.TransactionType, specs ...specification.Specification) (float64, error)
	// WagerTotals sums completed bets per player in [from, to).
	WagerTotals(ctx context.Context, from, to time.Time, games []string) ([]entity.WagerTotal, error)
}
