package utm

import (
	"context"
	"strings"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/money"
)

// Ingest stores one tracking event. A missing occurred_at means now, and
// visits carry no amount.
func Ingest(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UtmEventRequest, now time.Time) (*entity.UtmEvent, error) {
	e := &entity.UtmEvent{
		Event:       entity.UtmEventType(req.Event),
		UtmSource:   strings.ToLower(strings.TrimSpace(req.UtmSource)),
		UtmMedium:   strings.ToLower(strings.TrimSpace(req.UtmMedium)),
		UtmCampaign: strings.TrimSpace(req.UtmCampaign),
		UtmContent:  strings.TrimSpace(req.UtmContent),
		UtmTerm:     strings.TrimSpace(req.UtmTerm),
		VisitorId:   strings.TrimSpace(req.VisitorId),
		UserId:      req.UserId,
		Amount:      money.RoundCents(req.Amount),
		OccurredAt:  now.UTC(),
	}
	if req.OccurredAt != nil {
		e.OccurredAt = req.OccurredAt.UTC()
	}
	if e.Event == entity.UtmVisit || e.Event == entity.UtmRegister {
		e.Amount = 0
	}

	if err := uow.UtmEventRepository().Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func ListEvents(ctx context.Context, uow unitofwork.UnitOfWork, req dto.UtmEventListRequest) ([]*entity.UtmEvent, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	from, err := serverutils.ParseTimeBound("from", req.From, false)
	if err != nil {
		return nil, 0, err
	}
	to, err := serverutils.ParseTimeBound("to", req.To, true)
	if err != nil {
		return nil, 0, err
	}

	filters := []specification.Specification{
		specification.TimeRange{Field: "occurred_at", From: from, To: to},
	}
	if req.Event != "" {
		filters = append(filters, specification.Filter("event", req.Event))
	}
	if req.UtmSource != "" {
		filters = append(filters, specification.Filter("utm_source", strings.ToLower(req.UtmSource)))
	}
	if req.UtmCampaign != "" {
		filters = append(filters, specification.Filter("utm_campaign", req.UtmCampaign))
	}

	total, err := uow.UtmEventRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	events, err := uow.UtmEventRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "occurred_at", Desc: true},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
