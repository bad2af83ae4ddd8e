package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBonusController interface {
	RegisterRoutes(r fiber.Router)
	GetBonuses(ctx *fiber.Ctx) error
	GetBonus(ctx *fiber.Ctx) error
	CreateBonus(ctx *fiber.Ctx) error
	UpdateBonus(ctx *fiber.Ctx) error
	ChangeBonusStatus(ctx *fiber.Ctx) error
	DeleteBonus(ctx *fiber.Ctx) error
	EstimateBonus(ctx *fiber.Ctx) error
}

type bonusController struct {
	service  service.IBonusService
	enforcer *rbac.Enforcer
}

func NewBonusController(service service.IBonusService, enforcer *rbac.Enforcer) IBonusController {
	return &bonusController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *bonusController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bonuses")
	h.Post("/:id/estimate", c.enforcer.RequireAction("bonuses", rbac.ActionRead), c.EstimateBonus)

	h.Use(c.enforcer.Require("bonuses"))
	h.Get("", c.GetBonuses)
	h.Post("", c.CreateBonus)
	h.Get("/:id", c.GetBonus)
	h.Put("/:id", c.UpdateBonus)
	h.Put("/:id/status", c.ChangeBonusStatus)
	h.Delete("/:id", c.DeleteBonus)
}

func (c *bonusController) GetBonuses(ctx *fiber.Ctx) error {
	var req dto.BonusListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetBonuses(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get bonuses", res))
}

func (c *bonusController) GetBonus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetBonus(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get bonus", res))
}

func (c *bonusController) CreateBonus(ctx *fiber.Ctx) error {
	var req dto.BonusRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateBonus(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Bonus created", res))
}

func (c *bonusController) UpdateBonus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.BonusRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateBonus(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Bonus updated", res))
}

func (c *bonusController) ChangeBonusStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.BonusStatusRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.ChangeBonusStatus(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Bonus status updated", res))
}

func (c *bonusController) DeleteBonus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteBonus(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Bonus deleted", nil))
}

func (c *bonusController) EstimateBonus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.BonusEstimateRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.EstimateBonus(ctx.UserContext(), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success estimate bonus", res))
}
