package mailer

import (
	"testing"

	"casino-admin-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcomeEscapes(t *testing.T) {
	body, err := RenderWelcome("<Eve>", "Support", "https://admin.example.com")
	require.NoError(t, err)
	assert.Contains(t, body, "&lt;Eve&gt;")
	assert.Contains(t, body, "<strong>Support</strong>")
	assert.Contains(t, body, `href="https://admin.example.com"`)
}

func TestNoopWithoutHost(t *testing.T) {
	svc := NewEmailService("", 587, "", "", "Back Office", "", logger.NewNopLogger())
	assert.NoError(t, svc.SendWelcome("a@example.com", "A", "Ops"))
}
