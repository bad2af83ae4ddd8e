package service

import (
	"context"
	"strings"
	"testing"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/testutil"
	"casino-admin-be/pkg/admin/upload"
	"casino-admin-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUploadStoresFileAndRecord(t *testing.T) {
	ctx := context.Background()
	bucket, err := storage.Open(ctx, "mem://", "https://cdn.example.com")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	factory, _ := testutil.NewFactory(t)
	log := logger.NewNopLogger()
	audit := &fakeAudit{}
	svc := NewUploadService(factory, log, upload.NewManager(log, bucket, 1024), audit)
	actor := dto.Actor{AdminId: uuid.New()}

	res, err := svc.Upload(ctx, actor, "hero.png", "application/octet-stream", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	assert.True(t, strings.HasPrefix(res.Key, "uploads/"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.Equal(t, "https://cdn.example.com/"+res.Key, res.URL)

	stored, err := bucket.Get(ctx, res.Key)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	_, err = svc.Upload(ctx, actor, "notes.txt", "text/plain", []byte("hello"))
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Upload(ctx, actor, "big.png", "image/png", make([]byte, 2048))
	assert.ErrorIs(t, err, apperror.ErrValidation)

	assert.Equal(t, []string{"upload.create"}, audit.Actions())
}
