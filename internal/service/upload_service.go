package service

import (
	"context"
	"time"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/pkg/admin/mapper"
	"casino-admin-be/pkg/admin/upload"
)

type IUploadService interface {
	Upload(ctx context.Context, actor dto.Actor, name, contentType string, data []byte) (*dto.UploadResponse, error)
}

type uploadService struct {
	uowFactory    unitofwork.RepositoryFactory
	logger        logger.ILogger
	uploadManager *upload.Manager
	audit         IAuditService
}

func NewUploadService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger, uploadManager *upload.Manager, audit IAuditService) IUploadService {
	return &uploadService{
		uowFactory:    uowFactory,
		logger:        logger,
		uploadManager: uploadManager,
		audit:         audit,
	}
}

func (s *uploadService) Upload(ctx context.Context, actor dto.Actor, name, contentType string, data []byte) (*dto.UploadResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	u, err := s.uploadManager.Save(ctx, uow, name, contentType, data, actor.AdminId, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, "upload.create", "upload", u.Id.String(), map[string]interface{}{"key": u.Key, "size": u.Size})
	resp := mapper.UploadToResponse(u)
	return &resp, nil
}
