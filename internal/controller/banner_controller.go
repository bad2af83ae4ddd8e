package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IBannerController interface {
	RegisterRoutes(r fiber.Router)
	GetBanners(ctx *fiber.Ctx) error
	GetBanner(ctx *fiber.Ctx) error
	CreateBanner(ctx *fiber.Ctx) error
	UpdateBanner(ctx *fiber.Ctx) error
	DeleteBanner(ctx *fiber.Ctx) error
	ReorderBanners(ctx *fiber.Ctx) error
}

type bannerController struct {
	service  service.IBannerService
	enforcer *rbac.Enforcer
}

func NewBannerController(service service.IBannerService, enforcer *rbac.Enforcer) IBannerController {
	return &bannerController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *bannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/banners", c.enforcer.Require("banners"))
	h.Get("", c.GetBanners)
	h.Post("", c.CreateBanner)
	h.Put("/reorder", c.ReorderBanners)
	h.Get("/:id", c.GetBanner)
	h.Put("/:id", c.UpdateBanner)
	h.Delete("/:id", c.DeleteBanner)
}

func (c *bannerController) GetBanners(ctx *fiber.Ctx) error {
	var req dto.BannerListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetBanners(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get banners", res))
}

func (c *bannerController) GetBanner(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetBanner(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get banner", res))
}

func (c *bannerController) CreateBanner(ctx *fiber.Ctx) error {
	var req dto.BannerRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateBanner(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Banner created", res))
}

func (c *bannerController) UpdateBanner(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.BannerRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateBanner(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Banner updated", res))
}

func (c *bannerController) DeleteBanner(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteBanner(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Banner deleted", nil))
}

func (c *bannerController) ReorderBanners(ctx *fiber.Ctx) error {
	var req dto.BannerReorderRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.ReorderBanners(ctx.UserContext(), actorFrom(ctx), req); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Banners reordered", nil))
}
