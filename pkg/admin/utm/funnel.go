package utm

import (
	"sort"
	"strings"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/pkg/admin/money"
)

const (
	NoneKey      = "(none)"
	MaxRangeDays = 366
)

var groupColumns = map[string]string{
	"source":   "utm_source",
	"medium":   "utm_medium",
	"campaign": "utm_campaign",
}

// GroupColumn maps a group_by value to its column. Empty means source.
func GroupColumn(groupBy string) (string, error) {
	if groupBy == "" {
		groupBy = "source"
	}
	col, ok := groupColumns[groupBy]
	if !ok {
		return "", apperror.Field("group_by", "must be one of [source medium campaign]")
	}
	return col, nil
}

func rate(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return money.Round(float64(num)/float64(den), 4)
}

func finish(row *dto.FunnelRow) {
	row.DepositAmount = money.RoundCents(row.DepositAmount)
	row.RegistrationRate = rate(row.Registrations, row.Visits)
	row.DepositRate = rate(row.FirstDeposits, row.Registrations)
}

// BuildFunnel folds per-group event counts into funnel rows. Blank keys are
// grouped as "(none)". Rows are sorted by registrations descending, then key.
func BuildFunnel(counts []entity.UtmGroupCount) ([]dto.FunnelRow, dto.FunnelRow) {
	byKey := map[string]*dto.FunnelRow{}
	totals := dto.FunnelRow{Key: "total"}

	for _, c := range counts {
		key := strings.TrimSpace(c.Key)
		if key == "" {
			key = NoneKey
		}
		row, ok := byKey[key]
		if !ok {
			row = &dto.FunnelRow{Key: key}
			byKey[key] = row
		}

		switch c.Event {
		case entity.UtmVisit:
			row.Visits += c.Count
			totals.Visits += c.Count
		case entity.UtmRegister:
			row.Registrations += c.Count
			totals.Registrations += c.Count
		case entity.UtmFirstDeposit:
			row.FirstDeposits += c.Count
			totals.FirstDeposits += c.Count
			row.DepositAmount += c.Amount
			totals.DepositAmount += c.Amount
		case entity.UtmDeposit:
			row.DepositAmount += c.Amount
			totals.DepositAmount += c.Amount
		}
	}

	rows := make([]dto.FunnelRow, 0, len(byKey))
	for _, row := range byKey {
		finish(row)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Registrations != rows[j].Registrations {
			return rows[i].Registrations > rows[j].Registrations
		}
		return rows[i].Key < rows[j].Key
	})

	finish(&totals)
	return rows, totals
}

// BuildTimeseries lays daily counts over [from, to). Every day in the range is
// present, zero filled.
func BuildTimeseries(counts []entity.UtmDailyCount, from, to time.Time) []dto.TimeseriesPoint {
	start := truncateDay(from)
	var out []dto.TimeseriesPoint
	index := map[string]int{}
	for d := start; d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(serverutils.DateLayout)
		index[key] = len(out)
		out = append(out, dto.TimeseriesPoint{Date: key})
	}

	for _, c := range counts {
		i, ok := index[c.Day]
		if !ok {
			continue
		}
		switch c.Event {
		case entity.UtmVisit:
			out[i].Visits += c.Count
		case entity.UtmRegister:
			out[i].Registrations += c.Count
		case entity.UtmFirstDeposit:
			out[i].FirstDeposits += c.Count
		case entity.UtmDeposit:
			out[i].Deposits += c.Count
		}
	}
	if out == nil {
		out = []dto.TimeseriesPoint{}
	}
	return out
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRange resolves a [from, to) report window. A date-only "to" includes
// that whole day. Defaults to the 30 days ending today.
func ParseRange(fromRaw, toRaw string, now time.Time) (time.Time, time.Time, error) {
	fromPtr, err := serverutils.ParseTimeBound("from", fromRaw, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toPtr, err := serverutils.ParseTimeBound("to", toRaw, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to := truncateDay(now).AddDate(0, 0, 1)
	if toPtr != nil {
		to = *toPtr
	}
	from := to.AddDate(0, 0, -30)
	if fromPtr != nil {
		from = *fromPtr
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, apperror.Field("to", "must be after from")
	}
	if to.Sub(from) > MaxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, apperror.Field("from", "range must not exceed 366 days")
	}
	return from, to, nil
}
