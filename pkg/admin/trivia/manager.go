package trivia

import (
	"context"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Manager struct {
	logger logger.ILogger
}

func NewManager(logger logger.ILogger) *Manager {
	return &Manager{logger: logger}
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, req dto.TriviaListRequest) ([]*entity.TriviaQuestion, int64, error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	filters := []specification.Specification{
		specification.Search{Fields: []string{"question", "category"}, Query: req.Search},
	}
	if req.Category != "" {
		filters = append(filters, specification.Filter("category", req.Category))
	}
	if req.Difficulty != "" {
		filters = append(filters, specification.Filter("difficulty", req.Difficulty))
	}

	total, err := uow.TriviaRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	questions, err := uow.TriviaRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.TriviaQuestion, error) {
	q, err := uow.TriviaRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, apperror.NotFound("trivia question")
	}
	return q, nil
}

func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.TriviaRequest) (*entity.TriviaQuestion, error) {
	if err := ValidateQuestion(req); err != nil {
		return nil, err
	}
	q := &entity.TriviaQuestion{IsActive: true}
	apply(q, req)
	if err := uow.TriviaRepository().Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.TriviaRequest) (*entity.TriviaQuestion, error) {
	if err := ValidateQuestion(req); err != nil {
		return nil, err
	}
	q, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	apply(q, req)
	if err := uow.TriviaRepository().Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.TriviaQuestion, error) {
	q, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.TriviaRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return q, nil
}

// Import creates each question of the file in its own transaction, so one
// bad row does not undo the others.
func (m *Manager) Import(ctx context.Context, uow unitofwork.UnitOfWork, data []byte) (*dto.TriviaImportResponse, error) {
	file, err := ParseImportFile(data)
	if err != nil {
		return nil, err
	}

	res := &dto.TriviaImportResponse{Results: make([]dto.TriviaImportResult, 0, len(file.Questions))}
	for i, row := range file.Questions {
		result := dto.TriviaImportResult{Index: i}

		id, err := m.importRow(ctx, uow, row)
		if err != nil {
			result.Error = describe(err)
			res.FailedCount++
		} else {
			result.Success = true
			result.Id = &id
			res.CreatedCount++
		}
		res.Results = append(res.Results, result)
	}

	m.logger.Info("TRIVIA", "Import finished", map[string]interface{}{
		"created": res.CreatedCount,
		"failed":  res.FailedCount,
	})
	return res, nil
}

func (m *Manager) importRow(ctx context.Context, uow unitofwork.UnitOfWork, row dto.TriviaRequest) (uuid.UUID, error) {
	if err := ValidateQuestion(row); err != nil {
		return uuid.Nil, err
	}
	q := &entity.TriviaQuestion{IsActive: true}
	apply(q, row)

	if err := uow.Begin(ctx); err != nil {
		return uuid.Nil, err
	}
	if err := uow.TriviaRepository().Create(ctx, q); err != nil {
		_ = uow.Rollback()
		return uuid.Nil, err
	}
	if err := uow.Commit(); err != nil {
		return uuid.Nil, err
	}
	return q.Id, nil
}
