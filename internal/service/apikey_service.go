package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/apikey"
	"casino-admin-be/pkg/admin/mapper"

	"github.com/google/uuid"
)

type IApiKeyService interface {
	GetApiKeys(ctx context.Context, page serverutils.Page, search string) (*serverutils.PaginatedData[dto.ApiKeyResponse], error)
	GetApiKey(ctx context.Context, id uuid.UUID) (*dto.ApiKeyResponse, error)
	CreateApiKey(ctx context.Context, actor dto.Actor, req dto.ApiKeyRequest) (*dto.ApiKeyCreatedResponse, error)
	UpdateApiKey(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateApiKeyRequest) (*dto.ApiKeyResponse, error)
	RevokeApiKey(ctx context.Context, actor dto.Actor, id uuid.UUID) (*dto.ApiKeyResponse, error)
	DeleteApiKey(ctx context.Context, actor dto.Actor, id uuid.UUID) error

	// Authenticate backs the X-API-Key middleware of the public routes.
	Authenticate(ctx context.Context, plaintext, scope string) (*entity.ApiKey, error)
}

type apiKeyService struct {
	uowFactory    unitofwork.RepositoryFactory
	logger        logger.ILogger
	apiKeyManager *apikey.Manager
	audit         IAuditService
}

func NewApiKeyService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, apiKeyManager *apikey.Manager, audit IAuditService) IApiKeyService {
	return &apiKeyService{
		uowFactory:    uowFactory,
		logger:        logger,
		apiKeyManager: apiKeyManager,
		audit:         audit,
	}
}

func (s *apiKeyService) GetApiKeys(ctx context.Context, page serverutils.Page, search string) (*serverutils.PaginatedData[dto.ApiKeyResponse], error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	keys, total, err := s.apiKeyManager.FindAll(ctx, uow, page, search)
	if err != nil {
		return nil, err
	}
	result := serverutils.Paginated(mapper.ApiKeysToResponse(keys), page.Page, page.Limit, total)
	return &result, nil
}

func (s *apiKeyService) GetApiKey(ctx context.Context, id uuid.UUID) (*dto.ApiKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	k, err := s.apiKeyManager.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	resp := mapper.ApiKeyToResponse(k)
	return &resp, nil
}

func (s *apiKeyService) CreateApiKey(ctx context.Context, actor dto.Actor, req dto.ApiKeyRequest) (*dto.ApiKeyCreatedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	k, plaintext, err := s.apiKeyManager.Create(ctx, uow, req, actor.AdminId, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "apikey.create", "apikey", k.Id.String(), map[string]interface{}{"name": k.Name, "prefix": k.Prefix, "scopes": k.Scopes})
	return &dto.ApiKeyCreatedResponse{ApiKeyResponse: mapper.ApiKeyToResponse(k), Key: plaintext}, nil
}

func (s *apiKeyService) UpdateApiKey(ctx context.Context, actor dto.Actor, id uuid.UUID, req dto.UpdateApiKeyRequest) (*dto.ApiKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	k, err := s.apiKeyManager.Update(ctx, uow, id, req)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "apikey.update", "apikey", id.String(), map[string]interface{}{"name": k.Name, "scopes": k.Scopes})
	resp := mapper.ApiKeyToResponse(k)
	return &resp, nil
}

func (s *apiKeyService) RevokeApiKey(ctx context.Context, actor dto.Actor, id uuid.UUID) (*dto.ApiKeyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	k, err := s.apiKeyManager.Revoke(ctx, uow, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "apikey.revoke", "apikey", id.String(), map[string]interface{}{"prefix": k.Prefix})
	resp := mapper.ApiKeyToResponse(k)
	return &resp, nil
}

func (s *apiKeyService) DeleteApiKey(ctx context.Context, actor dto.Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	k, err := s.apiKeyManager.Delete(ctx, uow, id)
	if err != nil {
		return err
	}
	s.audit.Record(ctx, actor, "apikey.delete", "apikey", id.String(), map[string]interface{}{"prefix": k.Prefix})
	return nil
}

func (s *apiKeyService) Authenticate(ctx context.Context, plaintext, scope string) (*entity.ApiKey, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return s.apiKeyManager.Authenticate(ctx, uow, plaintext, scope, time.Now().UTC())
}
