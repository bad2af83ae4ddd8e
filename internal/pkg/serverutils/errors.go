package serverutils

import (
	"errors"

	"casino-admin-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, apperror.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, apperror.ErrTooManyRequests):
		return fiber.StatusTooManyRequests
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// HandleError writes the error envelope for err. Internal errors hide their message.
func HandleError(ctx *fiber.Ctx, err error) error {
	status := StatusFor(err)
	if fields := apperror.Fields(err); fields != nil {
		return ctx.Status(status).JSON(ValidationErrorResponse(fields))
	}
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		message = "Internal server error"
	}
	return ctx.Status(status).JSON(ErrorResponse(status, message))
}

// ErrorHandler is installed as fiber's global error handler so errors returned
// straight from handlers and middleware still use the envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	return HandleError(ctx, err)
}
