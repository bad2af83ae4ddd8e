package controller

import (
	"io"
	"mime/multipart"

	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/apperror"
	"casino-admin-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// actorFrom builds the audit actor from the JWT claims of the request.
func actorFrom(ctx *fiber.Ctx) dto.Actor {
	actor := dto.Actor{IpAddress: ctx.IP()}
	if claims := serverutils.CurrentAdmin(ctx); claims != nil {
		actor.AdminId = claims.AdminUUID()
		actor.Email = claims.Email
	}
	return actor
}

func paramID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.BadRequest("Invalid ID")
	}
	return id, nil
}

func bindQuery(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.QueryParser(out); err != nil {
		return apperror.BadRequest("Invalid query parameters")
	}
	return nil
}

// readFormFile loads a multipart file field into memory. Size limits are the
// caller's business, fiber's BodyLimit caps the request.
func readFormFile(ctx *fiber.Ctx, field string) (*multipart.FileHeader, []byte, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil, nil, apperror.Field(field, "is required")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return fh, data, nil
}
