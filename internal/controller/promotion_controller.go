package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromotionController interface {
	RegisterRoutes(r fiber.Router)
	GetPromotions(ctx *fiber.Ctx) error
	GetPromotion(ctx *fiber.Ctx) error
	CreatePromotion(ctx *fiber.Ctx) error
	UpdatePromotion(ctx *fiber.Ctx) error
	DeletePromotion(ctx *fiber.Ctx) error
}

type promotionController struct {
	service  service.IPromotionService
	enforcer *rbac.Enforcer
}

func NewPromotionController(service service.IPromotionService, enforcer *rbac.Enforcer) IPromotionController {
	return &promotionController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *promotionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/promotions", c.enforcer.Require("promotions"))
	h.Get("", c.GetPromotions)
	h.Post("", c.CreatePromotion)
	h.Get("/:id", c.GetPromotion)
	h.Put("/:id", c.UpdatePromotion)
	h.Delete("/:id", c.DeletePromotion)
}

func (c *promotionController) GetPromotions(ctx *fiber.Ctx) error {
	var req dto.PromotionListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetPromotions(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get promotions", res))
}

func (c *promotionController) GetPromotion(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetPromotion(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get promotion", res))
}

func (c *promotionController) CreatePromotion(ctx *fiber.Ctx) error {
	var req dto.PromotionRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreatePromotion(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Promotion created", res))
}

func (c *promotionController) UpdatePromotion(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.PromotionRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdatePromotion(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Promotion updated", res))
}

func (c *promotionController) DeletePromotion(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeletePromotion(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Promotion deleted", nil))
}
