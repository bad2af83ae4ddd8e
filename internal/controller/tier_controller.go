package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITierController interface {
	RegisterRoutes(r fiber.Router)
	GetTiers(ctx *fiber.Ctx) error
	GetTier(ctx *fiber.Ctx) error
	CreateTier(ctx *fiber.Ctx) error
	UpdateTier(ctx *fiber.Ctx) error
	DeleteTier(ctx *fiber.Ctx) error
}

type tierController struct {
	service  service.ITierService
	enforcer *rbac.Enforcer
}

func NewTierController(service service.ITierService, enforcer *rbac.Enforcer) ITierController {
	return &tierController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *tierController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tiers", c.enforcer.Require("tiers"))
	h.Get("", c.GetTiers)
	h.Post("", c.CreateTier)
	h.Get("/:id", c.GetTier)
	h.Put("/:id", c.UpdateTier)
	h.Delete("/:id", c.DeleteTier)
}

func (c *tierController) GetTiers(ctx *fiber.Ctx) error {
	res, err := c.service.GetTiers(ctx.UserContext())
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tiers", res))
}

func (c *tierController) GetTier(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetTier(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get tier", res))
}

func (c *tierController) CreateTier(ctx *fiber.Ctx) error {
	var req dto.TierRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateTier(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Tier created", res))
}

func (c *tierController) UpdateTier(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.TierRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateTier(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Tier updated", res))
}

func (c *tierController) DeleteTier(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteTier(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Tier deleted", nil))
}
