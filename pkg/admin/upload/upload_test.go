package upload

import (
	"testing"
	"time"

	"casino-admin-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestContentType(t *testing.T) {
	ct, err := ContentType("image/webp", []byte("whatever"))
	require.NoError(t, err)
	assert.Equal(t, "image/webp", ct)

	ct, err = ContentType("IMAGE/JPEG; charset=binary", nil)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", ct)

	ct, err = ContentType("application/octet-stream", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct, "falls back to sniffing")

	_, err = ContentType("application/pdf", []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestKey(t *testing.T) {
	id := uuid.MustParse("0b7e2c9a-6f0e-4c1a-9d3b-1f2e3d4c5b6a")
	local := time.Date(2026, 3, 31, 23, 0, 0, 0, time.FixedZone("UTC-3", -3*60*60))
	assert.Equal(t, "uploads/2026/04/0b7e2c9a-6f0e-4c1a-9d3b-1f2e3d4c5b6a.png", Key(local, id, "image/png"), "month is taken in UTC")
	assert.Equal(t, "uploads/2026/03/0b7e2c9a-6f0e-4c1a-9d3b-1f2e3d4c5b6a.svg", Key(local.Add(-3*time.Hour), id, "image/svg+xml"))
}
