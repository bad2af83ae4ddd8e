package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICashbackController interface {
	RegisterRoutes(r fiber.Router)
	GetPrograms(ctx *fiber.Ctx) error
	GetProgram(ctx *fiber.Ctx) error
	CreateProgram(ctx *fiber.Ctx) error
	UpdateProgram(ctx *fiber.Ctx) error
	DeleteProgram(ctx *fiber.Ctx) error
	Preview(ctx *fiber.Ctx) error
}

type cashbackController struct {
	service  service.ICashbackService
	enforcer *rbac.Enforcer
}

func NewCashbackController(service service.ICashbackService, enforcer *rbac.Enforcer) ICashbackController {
	return &cashbackController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *cashbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cashback")
	h.Post("/:id/preview", c.enforcer.RequireAction("cashback", rbac.ActionRead), c.Preview)

	h.Use(c.enforcer.Require("cashback"))
	h.Get("", c.GetPrograms)
	h.Post("", c.CreateProgram)
	h.Get("/:id", c.GetProgram)
	h.Put("/:id", c.UpdateProgram)
	h.Delete("/:id", c.DeleteProgram)
}

func (c *cashbackController) GetPrograms(ctx *fiber.Ctx) error {
	res, err := c.service.GetPrograms(ctx.UserContext(), serverutils.ParsePage(ctx), ctx.Query("q"))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cashback programs", res))
}

func (c *cashbackController) GetProgram(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetProgram(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cashback program", res))
}

func (c *cashbackController) CreateProgram(ctx *fiber.Ctx) error {
	var req dto.CashbackRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateProgram(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Cashback program created", res))
}

func (c *cashbackController) UpdateProgram(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.CashbackRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateProgram(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Cashback program updated", res))
}

func (c *cashbackController) DeleteProgram(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteProgram(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Cashback program deleted", nil))
}

func (c *cashbackController) Preview(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.CashbackPreviewRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.Preview(ctx.UserContext(), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success preview cashback", res))
}
