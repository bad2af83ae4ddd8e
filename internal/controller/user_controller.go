package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetUsers(ctx *fiber.Ctx) error
	GetUserDetail(ctx *fiber.Ctx) error
	UpdateUserStatus(ctx *fiber.Ctx) error
	AssignTier(ctx *fiber.Ctx) error
	GetUserTransactions(ctx *fiber.Ctx) error

	GetTransactions(ctx *fiber.Ctx) error
	GetTransaction(ctx *fiber.Ctx) error
	ExportTransactions(ctx *fiber.Ctx) error
}

type userController struct {
	service  service.IUserService
	enforcer *rbac.Enforcer
}

func NewUserController(service service.IUserService, enforcer *rbac.Enforcer) IUserController {
	return &userController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	users := r.Group("/users", c.enforcer.Require("users"))
	users.Get("", c.GetUsers)
	users.Get("/:id", c.GetUserDetail)
	users.Put("/:id/status", c.UpdateUserStatus)
	users.Put("/:id/tier", c.AssignTier)
	users.Get("/:id/transactions", c.enforcer.Require("transactions"), c.GetUserTransactions)

	txs := r.Group("/transactions", c.enforcer.Require("transactions"))
	txs.Get("", c.GetTransactions)
	// export is registered before :id so it is not parsed as an id
	txs.Get("/export", c.ExportTransactions)
	txs.Get("/:id", c.GetTransaction)
}

func (c *userController) GetUsers(ctx *fiber.Ctx) error {
	var req dto.UserListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetUsers(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get users", res))
}

func (c *userController) GetUserDetail(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetUserDetail(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get user detail", res))
}

func (c *userController) UpdateUserStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.UpdateUserStatusRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateUserStatus(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User status updated", res))
}

func (c *userController) AssignTier(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.UpdateUserTierRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.AssignTier(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User tier updated", res))
}

func (c *userController) GetUserTransactions(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetUserTransactions(ctx.UserContext(), id, serverutils.ParsePage(ctx))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get user transactions", res))
}

func (c *userController) GetTransactions(ctx *fiber.Ctx) error {
	var req dto.TransactionListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetTransactions(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}

func (c *userController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetTransaction(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get transaction", res))
}

func (c *userController) ExportTransactions(ctx *fiber.Ctx) error {
	var req dto.TransactionListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	if err := c.service.ExportTransactions(ctx.UserContext(), actorFrom(ctx), req, ctx.Response().BodyWriter()); err != nil {
		ctx.Response().ResetBody()
		ctx.Response().Header.Del(fiber.HeaderContentDisposition)
		return serverutils.HandleError(ctx, err)
	}
	return nil
}
