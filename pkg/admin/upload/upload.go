package upload

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Extensions maps each allowed content type to the stored file extension.
var Extensions = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// ContentType resolves the type of an upload. The declared type wins when it
// is allowed; otherwise the bytes are sniffed.
func ContentType(declared string, data []byte) (string, error) {
	declared = strings.ToLower(strings.TrimSpace(strings.Split(declared, ";")[0]))
	if _, ok := Extensions[declared]; ok {
		return declared, nil
	}
	sniffed := strings.Split(http.DetectContentType(data), ";")[0]
	if _, ok := Extensions[sniffed]; ok {
		return sniffed, nil
	}
	return "", apperror.Field("file", "unsupported file type")
}

// Key builds uploads/YYYY/MM/<uuid><ext>.
func Key(now time.Time, id uuid.UUID, contentType string) string {
	now = now.UTC()
	return path.Join("uploads", fmt.Sprintf("%04d", now.Year()), fmt.Sprintf("%02d", int(now.Month())), id.String()+Extensions[contentType])
}

type Manager struct {
	logger   logger.ILogger
	store    Store
	maxBytes int64
}

func NewManager(logger logger.ILogger, store Store, maxBytes int64) *Manager {
	return &Manager{logger: logger, store: store, maxBytes: maxBytes}
}

// Save validates and stores a file, then records it. The blob is removed when
// the row cannot be written.
func (m *Manager) Save(ctx context.Context, uow unitofwork.UnitOfWork, name, declaredType string, data []byte, uploadedBy uuid.UUID, now time.Time) (*entity.Upload, error) {
	if len(data) == 0 {
		return nil, apperror.Field("file", "is empty")
	}
	if int64(len(data)) > m.maxBytes {
		return nil, apperror.Field("file", fmt.Sprintf("must not exceed %d bytes", m.maxBytes))
	}
	contentType, err := ContentType(declaredType, data)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := Key(now, id, contentType)
	if err := m.store.Put(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	u := &entity.Upload{
		Id:           id,
		Key:          key,
		OriginalName: path.Base(name),
		ContentType:  contentType,
		Size:         int64(len(data)),
		URL:          m.store.PublicURL(key),
		UploadedBy:   &uploadedBy,
	}
	if err := uow.UploadRepository().Create(ctx, u); err != nil {
		if delErr := m.store.Delete(ctx, key); delErr != nil {
			m.logger.Warn("UPLOAD", "Failed to remove orphan blob", map[string]interface{}{"key": key, "error": delErr.Error()})
		}
		return nil, err
	}

	m.logger.Info("UPLOAD", "File stored", map[string]interface{}{"key": key, "size": u.Size})
	return u, nil
}
