package role

import (
	"testing"

	"casino-admin-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidatePermissions(t *testing.T) {
	assert.NoError(t, ValidatePermissions([]string{"*"}))
	assert.NoError(t, ValidatePermissions([]string{"bonuses:read", "bonuses:write", "logs:read"}))

	err := ValidatePermissions([]string{"bonuses:read", "bonuses:delete", "casino:*"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, "unknown permissions: bonuses:delete, casino:*", apperror.Fields(err)["permissions"])
}
