package contract

import (
	"context"
	"time"

	"casino-admin-be/internal/entity"
)

type UtmEventRepository interface {
	CrudRepository[entity.UtmEvent]
	// GroupCounts buckets events in [from, to) by column and event type.
	GroupCounts(ctx context.Context, column string, from, to time.Time) ([]entity.UtmGroupCount, error)
	// DailyCounts counts events in [from, to) per UTC day and event type.
	DailyCounts(ctx context.Context, from, to time.Time) ([]entity.UtmDailyCount, error)
}
