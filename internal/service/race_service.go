package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/race"

	"github.com/google/uuid"
)

type IRaceService interface {
	GetRaces(ctx context.Context, req dto.RaceListRequest) (*serverutils.PaginatedData[dto.RaceResponse], error)
	GetRace(ctx context.Context, id uuid.UUID) (*dto.RaceResponse, error)
	CreateRace(ctx context.Context, actor dto.Actor, req dto.RaceRequest) (*dto.RaceResponse, error)
	UpdateRace(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.RaceRequest) (*dto.RaceResponse, error)
	DeleteRace(ctx context.Context, actor dto.Actor, id uuid.UUID) error
	GetLeaderboard(ctx context.Context, id uuid.UUID, limit int) (*dto.LeaderboardResponse, error)
}

type raceService struct {
	uowFactory  unitofwork.RepositoryFactory
	logger      logger.ILogger
	raceManager *race.Manager
	audit       IAuditService
}

func NewRaceService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, raceManager *race.Manager, audit IAuditService) IRaceService {
	return &raceService{
		uowFactory:  uowFactory,
		logger:      logger,
		raceManager: raceManager,
		audit:       audit,
	}
}

func (s *raceService) GetRaces(ctx context.Context, req dto.RaceListRequest) (*serverutils.PaginatedData[dto.RaceResponse], error) {
	now := time.Now().UTC()
	uow := s.uowFactory.NewUnitOfWork(ctx)
	races, total, err := s.raceManager.FindAll(ctx, uow, req, now)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.RacesToResponse(races, now), page.Page, page.Limit, total)
	return &result, nil
}

func (s *raceService) GetRace(ctx context.Context, id uuid.UUID) (*dto.RaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := s.raceManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.RaceToResponse(r, time.Now().UTC())
	return &resp, nil
}

func (s *raceService) CreateRace(ctx context.Context, actor dto.Actor, req dto.RaceRequest) (*dto.RaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := s.raceManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "race.create", "race", r.Id.String(), map[string]interface{}{"name": r.Name})
	resp := mapper.RaceToResponse(r, time.Now().UTC())
	return &resp, nil
}

func (s *raceService) UpdateRace(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.RaceRequest) (*dto.RaceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := s.raceManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "race.update", "race", id.String(), map[string]interface{}{"name": r.Name, "cancelled": r.Cancelled})
	resp := mapper.RaceToResponse(r, time.Now().UTC())
	return &resp, nil
}

func (s *raceService) DeleteRace(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	r, err := s.raceManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "race.delete", "race", id.String(), map[string]interface{}{"name": r.Name})
	return nil
}

func (s *raceService) GetLeaderboard(ctx context.Context, id uuid.UUID, limit int) (*dto.LeaderboardResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.raceManager.Leaderboard(ctx, uow, id, limit, time.Now().UTC())
}
