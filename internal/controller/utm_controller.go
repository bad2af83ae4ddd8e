package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUtmController interface {
	RegisterRoutes(r fiber.Router)
	GetFunnel(ctx *fiber.Ctx) error
	GetTimeseries(ctx *fiber.Ctx) error
	GetEvents(ctx *fiber.Ctx) error
}

type utmController struct {
	service  service.IUtmService
	enforcer *rbac.Enforcer
}

func NewUtmController(service service.IUtmService, enforcer *rbac.Enforcer) IUtmController {
	return &utmController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *utmController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/utm", c.enforcer.Require("utm"))
	h.Get("/funnel", c.GetFunnel)
	h.Get("/timeseries", c.GetTimeseries)
	h.Get("/events", c.GetEvents)
}

func (c *utmController) GetFunnel(ctx *fiber.Ctx) error {
	var req dto.UtmReportRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetFunnel(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get utm funnel", res))
}

func (c *utmController) GetTimeseries(ctx *fiber.Ctx) error {
	var req dto.UtmReportRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetTimeseries(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get utm timeseries", res))
}

func (c *utmController) GetEvents(ctx *fiber.Ctx) error {
	var req dto.UtmEventListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetEvents(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get utm events", res))
}
