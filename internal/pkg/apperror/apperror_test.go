package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("load bonus: %w", NotFound("bonus"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "load bonus: bonus not found", err.Error())

	assert.ErrorIs(t, Conflict("code %q already exists", "WELCOME"), ErrConflict)
	assert.False(t, errors.Is(Conflict("x"), ErrNotFound))
}

func TestValidationError(t *testing.T) {
	err := Validation(map[string]string{"code": "required", "amount": "must be positive"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: amount: must be positive; code: required", err.Error())
	assert.Equal(t, "required", Fields(fmt.Errorf("wrap: %w", err))["code"])
	assert.Nil(t, Fields(errors.New("plain")))
}
