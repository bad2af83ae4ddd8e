package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/utm"
)

type IUtmService interface {
	Ingest(ctx context.Context, req dto.UtmEventRequest) (*dto.UtmEventResponse, error)
	GetFunnel(ctx context.Context, req dto.UtmReportRequest) (*dto.FunnelResponse, error)
	GetTimeseries(ctx context.Context, req dto.UtmReportRequest) (*dto.TimeseriesResponse, error)
	GetEvents(ctx context.Context, req dto.UtmEventListRequest) (*serverutils.PaginatedData[dto.UtmEventResponse], error)
}

type utmService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	reporter   *utm.Reporter
}

func NewUtmService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, reporter *utm.Reporter) IUtmService {
	return &utmService{
		uowFactory: uowFactory,
		logger:     logger,
		reporter:   reporter,
	}
}

func (s *utmService) Ingest(ctx context.Context, req dto.UtmEventRequest) (*dto.UtmEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	e, err := utm.Ingest(ctx, uow, req, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.reporter.Flush()
	resp := mapper.UtmEventToResponse(e)
	return &resp, nil
}

func (s *utmService) GetFunnel(ctx context.Context, req dto.UtmReportRequest) (*dto.FunnelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.reporter.Funnel(ctx, uow, req, time.Now().UTC())
}

func (s *utmService) GetTimeseries(ctx context.Context, req dto.UtmReportRequest) (*dto.TimeseriesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.reporter.Timeseries(ctx, uow, req, time.Now().UTC())
}

func (s *utmService) GetEvents(ctx context.Context, req dto.UtmEventListRequest) (*serverutils.PaginatedData[dto.UtmEventResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, total, err := utm.ListEvents(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.UtmEventsToResponse(events), page.Page, page.Limit, total)
	return &result, nil
}
