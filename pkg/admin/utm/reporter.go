package utm

import (
	"context"
	"fmt"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const ReportTTL = time.Minute

// Reporter builds funnel and timeseries reports, caching each by its query.
type Reporter struct {
	cache *cache.Cache
}

func NewReporter() *Reporter {
	return &Reporter{cache: cache.New(ReportTTL, 5*time.Minute)}
}

// Flush drops cached reports, used after ingesting events.
func (r *Reporter) Flush() {
	r.cache.Flush()
}

func (r *Reporter) Funnel(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UtmReportRequest, now time.Time) (*dto.FunnelResponse, error) {
	from, to, err := ParseRange(req.From, req.To, now)
	if err != nil {
		return nil, err
	}
	column, err := GroupColumn(req.GroupBy)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("funnel|%s|%d|%d", column, from.Unix(), to.Unix())
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*dto.FunnelResponse), nil
	}

	counts, err := uow.UtmEventRepository().GroupCounts(ctx, column, from, to)
	if err != nil {
		return nil, err
	}
	rows, totals := BuildFunnel(counts)

	groupBy := req.GroupBy
	if groupBy == "" {
		groupBy = "source"
	}
	res := &dto.FunnelResponse{From: from, To: to, GroupBy: groupBy, Rows: rows, Totals: totals}
	r.cache.SetDefault(key, res)
	return res, nil
}

func (r *Reporter) Timeseries(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UtmReportRequest, now time.Time) (*dto.TimeseriesResponse, error) {
	from, to, err := ParseRange(req.From, req.To, now)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("timeseries|%d|%d", from.Unix(), to.Unix())
	if cached, ok := r.cache.Get(key); ok {
		return cached.(*dto.TimeseriesResponse), nil
	}

	counts, err := uow.UtmEventRepository().DailyCounts(ctx, from, to)
	if err != nil {
		return nil, err
	}

	res := &dto.TimeseriesResponse{From: from, To: to, Points: BuildTimeseries(counts, from, to)}
	r.cache.SetDefault(key, res)
	return res, nil
}
