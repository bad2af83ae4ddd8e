package service

import (
	"context"
	"encoding/json"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/scope"
	"casino-admin-be/internal/repository/specification"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// AuditTopic is the in-process topic audit entries travel on before they are stored.
const AuditTopic = "admin.audit"

type IAuditService interface {
	// Record is fire and forget, publish failures are logged.
	Record(ctx context.Context, actor dto.Actor, action, entityType, entityId string, details map[string]interface{})
	GetAuditLogs(ctx context.Context, req dto.AuditLogListRequest) (*serverutils.PaginatedData[dto.AuditLogResponse], error)
}

type auditService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  message.Publisher
	logger     logger.ILogger
}

func NewAuditService(uowFactory unitofwork.RepositoryFactory, publisher message.Publisher, log logger.ILogger) IAuditService {
	return &auditService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *auditService) Record(ctx context.Context, actor dto.Actor, action, entityType, entityId string, details map[string]interface{}) {
	entry := dto.AuditMessage{
		AdminEmail: actor.Email,
		Action:     action,
		EntityType: entityType,
		EntityId:   entityId,
		Details:    details,
		IpAddress:  actor.IpAddress,
		OccurredAt: time.Now().UTC(),
	}
	if actor.AdminId != uuid.Nil {
		id := actor.AdminId
		entry.AdminId = &id
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		s.logger.Error("AUDIT", "Failed to encode audit entry", map[string]interface{}{"action": action, "error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(AuditTopic, msg); err != nil {
		s.logger.Error("AUDIT", "Failed to publish audit entry", map[string]interface{}{"action": action, "error": err.Error()})
	}
}

func (s *auditService) GetAuditLogs(ctx context.Context, req dto.AuditLogListRequest) (*serverutils.PaginatedData[dto.AuditLogResponse], error) {
	page := serverutils.NormalizePage(req.Page, req.Limit)

	var filters []specification.Specification
	if req.EntityType != "" {
		filters = append(filters, specification.Filter("entity_type", req.EntityType))
	}
	if req.Action != "" {
		filters = append(filters, specification.Filter("action", req.Action))
	}
	if req.AdminId != "" {
		adminId, err := uuid.Parse(req.AdminId)
		if err != nil {
			return nil, apperror.Field("admin_id", "must be a valid UUID")
		}
		filters = append(filters, specification.Filter("admin_id", adminId))
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.AuditLogRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	logs, err := uow.AuditLogRepository().FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: page.Limit, Offset: page.Offset()},
	)...)
	if err != nil {
		return nil, err
	}

	result := serverutils.Paginated(mapper.AuditLogsToResponse(logs), page.Page, page.Limit, total)
	return &result, nil
}
