package apikey

import (
	"context"
	"strings"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	adminEvents "casino-admin-be/pkg/admin/events"

	"github.com/google/uuid"
)

type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

func (m *Manager) FindAll(ctx context.Context, uow unitofwork.UnitOfWork, page serverutils.Page, search string) ([]*entity.ApiKey, int64, error) {
	filters := []specification.Specification{
		specification.Search{Fields: []string{"name", "prefix"}, Query: search},
	}

	total, err := uow.ApiKeyRepository().Count(ctx, filters...)
	if err != nil {
		return nil, 0, err
	}
	keys, err := uow.ApiKeyRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, 0, err
	}
	return keys, total, nil
}

func (m *Manager) FindOne(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.ApiKey, error) {
	k, err := uow.ApiKeyRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if k == nil {
		return nil, apperror.NotFound("api key")
	}
	return k, nil
}

// Create stores a new key and returns it with the plaintext, which is never
// persisted.
func (m *Manager) Create(ctx context.Context, uow unitofwork.UnitOfWork, req dto.ApiKeyRequest, createdBy uuid.UUID, now time.Time) (*entity.ApiKey, string, error) {
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return nil, "", apperror.Field("expires_at", "must be in the future")
	}

	plaintext, prefix, hash, err := Generate()
	if err != nil {
		return nil, "", err
	}

	k := &entity.ApiKey{
		Name:      strings.TrimSpace(req.Name),
		Prefix:    prefix,
		KeyHash:   hash,
		Scopes:    req.Scopes,
		CreatedBy: &createdBy,
	}
	if req.ExpiresAt != nil {
		expiresAt := req.ExpiresAt.UTC()
		k.ExpiresAt = &expiresAt
	}
	if err := uow.ApiKeyRepository().Create(ctx, k); err != nil {
		return nil, "", err
	}

	m.logger.Info("APIKEY", "Key created", map[string]interface{}{"api_key_id": k.Id.String(), "prefix": k.Prefix})
	return k, plaintext, nil
}

func (m *Manager) Update(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, req dto.UpdateApiKeyRequest) (*entity.ApiKey, error) {
	k, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		k.Name = strings.TrimSpace(*req.Name)
	}
	if len(req.Scopes) > 0 {
		k.Scopes = req.Scopes
	}
	if err := uow.ApiKeyRepository().Update(ctx, k); err != nil {
		return nil, err
	}
	return k, nil
}

// Revoke marks the key revoked. Revoking twice keeps the first timestamp.
func (m *Manager) Revoke(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID, now time.Time) (*entity.ApiKey, error) {
	k, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if k.RevokedAt != nil {
		return k, nil
	}

	revokedAt := now.UTC()
	k.RevokedAt = &revokedAt
	if err := uow.ApiKeyRepository().Update(ctx, k); err != nil {
		return nil, err
	}

	m.logger.Info("APIKEY", "Key revoked", map[string]interface{}{"api_key_id": k.Id.String(), "prefix": k.Prefix})
	m.publisher.PublishApiKeyRevoked(ctx, k.Id, k.Prefix)
	return k, nil
}

func (m *Manager) Delete(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.ApiKey, error) {
	k, err := m.FindOne(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	if err := uow.ApiKeyRepository().Delete(ctx, id); err != nil {
		return nil, err
	}
	return k, nil
}

// Authenticate resolves a plaintext key for a route requiring scope. The
// caller gets 401 for unknown, revoked or expired keys and 403 for a
// missing scope.
func (m *Manager) Authenticate(ctx context.Context, uow unitofwork.UnitOfWork, plaintext, scope string, now time.Time) (*entity.ApiKey, error) {
	plaintext = strings.TrimSpace(plaintext)
	if !WellFormed(plaintext) {
		return nil, apperror.Unauthorized("invalid api key")
	}

	k, err := uow.ApiKeyRepository().FindOne(ctx, specification.ByKeyHash{Hash: Hash(plaintext)})
	if err != nil {
		return nil, err
	}
	if k == nil || !Matches(plaintext, k.KeyHash) {
		return nil, apperror.Unauthorized("invalid api key")
	}
	if !k.Usable(now) {
		return nil, apperror.Unauthorized("api key revoked or expired")
	}
	if !k.HasScope(scope) {
		return nil, apperror.Forbidden("api key lacks scope " + scope)
	}

	if err := uow.ApiKeyRepository().TouchLastUsed(ctx, k.Id); err != nil {
		m.logger.Warn("APIKEY", "Failed to record key usage", map[string]interface{}{"api_key_id": k.Id.String(), "error": err.Error()})
	}
	return k, nil
}
