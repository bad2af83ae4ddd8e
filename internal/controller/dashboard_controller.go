package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboardStats(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
	GetAuditLogs(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service      service.IDashboardService
	auditService service.IAuditService
	enforcer     *rbac.Enforcer
}

func NewDashboardController(service service.IDashboardService, auditService service.IAuditService, enforcer *rbac.Enforcer) IDashboardController {
	return &dashboardController{
		service:      service,
		auditService: auditService,
		enforcer:     enforcer,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", c.enforcer.Require("dashboard"), c.GetDashboardStats)

	logs := r.Group("/logs", c.enforcer.Require("logs"))
	logs.Get("", c.GetLogs)
	logs.Get("/:id", c.GetLogDetail)

	r.Get("/audit-logs", c.enforcer.Require("logs"), c.GetAuditLogs)
}

func (c *dashboardController) GetDashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboardStats(ctx.UserContext())
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *dashboardController) GetLogs(ctx *fiber.Ctx) error {
	res, err := c.service.GetSystemLogs(ctx.UserContext(), serverutils.ParsePage(ctx), ctx.Query("level"))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *dashboardController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get log detail", res))
}

func (c *dashboardController) GetAuditLogs(ctx *fiber.Ctx) error {
	var req dto.AuditLogListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.auditService.GetAuditLogs(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get audit logs", res))
}
