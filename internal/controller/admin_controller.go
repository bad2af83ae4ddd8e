package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)

	// Admin accounts
	GetAdmins(ctx *fiber.Ctx) error
	GetAdmin(ctx *fiber.Ctx) error
	CreateAdmin(ctx *fiber.Ctx) error
	UpdateAdmin(ctx *fiber.Ctx) error
	ChangeAdminStatus(ctx *fiber.Ctx) error
	DeleteAdmin(ctx *fiber.Ctx) error

	// Roles and permissions
	GetRoles(ctx *fiber.Ctx) error
	GetRole(ctx *fiber.Ctx) error
	CreateRole(ctx *fiber.Ctx) error
	UpdateRole(ctx *fiber.Ctx) error
	DeleteRole(ctx *fiber.Ctx) error
	GetPermissions(ctx *fiber.Ctx) error
}

type adminController struct {
	service  service.IAdminService
	enforcer *rbac.Enforcer
}

func NewAdminController(service service.IAdminService, enforcer *rbac.Enforcer) IAdminController {
	return &adminController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	admins := r.Group("/admins", c.enforcer.Require("admins"))
	admins.Get("", c.GetAdmins)
	admins.Post("", c.CreateAdmin)
	admins.Get("/:id", c.GetAdmin)
	admins.Put("/:id", c.UpdateAdmin)
	admins.Put("/:id/status", c.ChangeAdminStatus)
	admins.Delete("/:id", c.DeleteAdmin)

	roles := r.Group("/roles", c.enforcer.Require("roles"))
	roles.Get("", c.GetRoles)
	roles.Post("", c.CreateRole)
	roles.Get("/:id", c.GetRole)
	roles.Put("/:id", c.UpdateRole)
	roles.Delete("/:id", c.DeleteRole)

	r.Get("/permissions", c.enforcer.Require("roles"), c.GetPermissions)
}

func (c *adminController) GetAdmins(ctx *fiber.Ctx) error {
	var req dto.AdminListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetAdmins(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get admins", res))
}

func (c *adminController) GetAdmin(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetAdmin(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get admin", res))
}

func (c *adminController) CreateAdmin(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateAdmin(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *adminController) UpdateAdmin(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.UpdateAdminRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateAdmin(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin updated", res))
}

func (c *adminController) ChangeAdminStatus(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.UpdateAdminStatusRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.ChangeAdminStatus(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Admin status updated", res))
}

func (c *adminController) DeleteAdmin(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteAdmin(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Admin deleted", nil))
}

func (c *adminController) GetRoles(ctx *fiber.Ctx) error {
	res, err := c.service.GetRoles(ctx.UserContext())
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get roles", res))
}

func (c *adminController) GetRole(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetRole(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get role", res))
}

func (c *adminController) CreateRole(ctx *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateRole(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Role created", res))
}

func (c *adminController) UpdateRole(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.RoleRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateRole(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Role updated", res))
}

func (c *adminController) DeleteRole(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteRole(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Role deleted", nil))
}

func (c *adminController) GetPermissions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get permissions", c.service.GetPermissionCatalog()))
}
