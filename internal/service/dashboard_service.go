package service

import (
	"context"
	"errors"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/dashboard"
)

type IDashboardService interface {
	GetDashboardStats(ctx context.Context) (*dto.DashboardResponse, error)
	GetSystemLogs(ctx context.Context, page serverutils.Page, level string) (*serverutils.PaginatedData[dto.LogListResponse], error)
	GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error)
}

type dashboardService struct {
	uowFactory          unitofwork.RepositoryFactory
	logger              logger.ILogger
	dashboardAggregator *dashboard.Aggregator
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, aggregator *dashboard.Aggregator) IDashboardService {
	return &dashboardService{
		uowFactory:          uowFactory,
		logger:              logger,
		dashboardAggregator: aggregator,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*dto.DashboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.dashboardAggregator.GetStats(ctx, uow, time.Now().UTC())
}

func (s *dashboardService) GetSystemLogs(ctx context.Context, page serverutils.Page, level string) (*serverutils.PaginatedData[dto.LogListResponse], error) {
	logs, total, err := s.dashboardAggregator.GetSystemLogs(level, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}
	result := serverutils.Paginated(logs, page.Page, page.Limit, total)
	return &result, nil
}

func (s *dashboardService) GetLogDetail(ctx context.Context, logId string) (*dto.LogDetailResponse, error) {
	res, err := s.dashboardAggregator.GetLogDetail(logId)
	if errors.Is(err, logger.ErrLogNotFound) {
		return nil, apperror.NotFound("log")
	}
	return res, err
}
