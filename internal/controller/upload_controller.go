package controller

import (
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	service  service.IUploadService
	enforcer *rbac.Enforcer
}

func NewUploadController(service service.IUploadService, enforcer *rbac.Enforcer) IUploadController {
	return &uploadController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	r.Post("/uploads", c.enforcer.Require("uploads"), c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fh, data, err := readFormFile(ctx, "file")
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.Upload(ctx.UserContext(), actorFrom(ctx), fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("File uploaded", res))
}
