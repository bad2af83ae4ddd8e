package implementation

import (
	"context"
	"fmt"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/mapper"
	"casino-admin-be/internal/model"
	"casino-admin-be/internal/repository/contract"

	"gorm.io/gorm"
)

var utmGroupColumns = map[string]bool{
	"utm_source":   true,
	"utm_medium":   true,
	"utm_campaign": true,
}

type UtmEventRepositoryImpl struct {
	crudRepository[entity.UtmEvent, model.UtmEvent]
}

func NewUtmEventRepository(db *gorm.DB) contract.UtmEventRepository {
	return &UtmEventRepositoryImpl{newCrudRepository[entity.UtmEvent, model.UtmEvent](db, mapper.NewUtmEventMapper())}
}

func (r *UtmEventRepositoryImpl) GroupCounts(ctx context.Context, column string, from, to time.Time) ([]entity.UtmGroupCount, error) {
	if !utmGroupColumns[column] {
		return nil, fmt.Errorf("unsupported utm group column %q", column)
	}

	var rows []struct {
		GroupKey string
		Event    string
		Total    int64
		Amount   float64
	}
	err := r.db.WithContext(ctx).Model(&model.UtmEvent{}).
		Select(fmt.Sprintf("COALESCE(%s, '') AS group_key, event, COUNT(*) AS total, COALESCE(SUM(amount), 0) AS amount", column)).
		Where("occurred_at >= ? AND occurred_at < ?", from.UTC(), to.UTC()).
		Group(column + ", event").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.UtmGroupCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.UtmGroupCount{
			Key:    row.GroupKey,
			Event:  entity.UtmEventType(row.Event),
			Count:  row.Total,
			Amount: row.Amount,
		})
	}
	return out, nil
}

// dayExpr formats occurred_at as a UTC YYYY-MM-DD string in the current dialect.
func (r *UtmEventRepositoryImpl) dayExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "to_char(occurred_at AT TIME ZONE 'UTC', 'YYYY-MM-DD')"
	}
	return "strftime('%Y-%m-%d', occurred_at)"
}

func (r *UtmEventRepositoryImpl) DailyCounts(ctx context.Context, from, to time.Time) ([]entity.UtmDailyCount, error) {
	var rows []struct {
		Day   string
		Event string
		Total int64
	}
	day := r.dayExpr()
	err := r.db.WithContext(ctx).Model(&model.UtmEvent{}).
		Select(day+" AS day, event, COUNT(*) AS total").
		Where("occurred_at >= ? AND occurred_at < ?", from.UTC(), to.UTC()).
		Group(day + ", event").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.UtmDailyCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.UtmDailyCount{Day: row.Day, Event: entity.UtmEventType(row.Event), Count: row.Total})
	}
	return out, nil
}
