package service

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/trivia"

	"github.com/google/uuid"
)

type ITriviaService interface {
	GetQuestions(ctx context.Context, req dto.TriviaListRequest) (*serverutils.PaginatedData[dto.TriviaResponse], error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*dto.TriviaResponse, error)
	CreateQuestion(ctx context.Context, actor dto.Actor, req dto.TriviaRequest) (*dto.TriviaResponse, error)
	UpdateQuestion(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.TriviaRequest) (*dto.TriviaResponse, error)
	DeleteQuestion(ctx context.Context, actor dto.Actor, id uuid.UUID) error
	ImportQuestions(ctx context.Context, actor dto.Actor, fileContent []byte) (*dto.TriviaImportResponse, error)
}

type triviaService struct {
	uowFactory    unitofwork.RepositoryFactory
	logger        logger.ILogger
	triviaManager *trivia.Manager
	audit         IAuditService
}

func NewTriviaService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, triviaManager *trivia.Manager, audit IAuditService) ITriviaService {
	return &triviaService{
		uowFactory:    uowFactory,
		logger:        logger,
		triviaManager: triviaManager,
		audit:         audit,
	}
}

func (s *triviaService) GetQuestions(ctx context.Context, req dto.TriviaListRequest) (*serverutils.PaginatedData[dto.TriviaResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	questions, total, err := s.triviaManager.FindAll(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	page := serverutils.NormalizePage(req.Page, req.Limit)
	result := serverutils.Paginated(mapper.TriviasToResponse(questions), page.Page, page.Limit, total)
	return &result, nil
}

func (s *triviaService) GetQuestion(ctx context.Context, id uuid.UUID) (*dto.TriviaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	q, err := s.triviaManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.TriviaToResponse(q)
	return &resp, nil
}

func (s *triviaService) CreateQuestion(ctx context.Context, actor dto.Actor, req dto.TriviaRequest) (*dto.TriviaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	q, err := s.triviaManager.Create(ctx, uow, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "trivia.create", "trivia", q.Id.String(), nil)
	resp := mapper.TriviaToResponse(q)
	return &resp, nil
}

func (s *triviaService) UpdateQuestion(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.TriviaRequest) (*dto.TriviaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	q, err := s.triviaManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "trivia.update", "trivia", id.String(), nil)
	resp := mapper.TriviaToResponse(q)
	return &resp, nil
}

func (s *triviaService) DeleteQuestion(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.triviaManager.Delete(ctx, uow, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "trivia.delete", "trivia", id.String(), nil)
	return nil
}

func (s *triviaService) ImportQuestions(ctx context.Context, actor dto.Actor, fileContent []byte) (*dto.TriviaImportResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	res, err := s.triviaManager.Import(ctx, uow, fileContent)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "trivia.import", "trivia", "", map[string]interface{}{
		"created": res.CreatedCount,
		"failed":  res.FailedCount,
	})
	return res, nil
}
