package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IApiKeyController interface {
	RegisterRoutes(r fiber.Router)
	GetApiKeys(ctx *fiber.Ctx) error
	GetApiKey(ctx *fiber.Ctx) error
	CreateApiKey(ctx *fiber.Ctx) error
	UpdateApiKey(ctx *fiber.Ctx) error
	RevokeApiKey(ctx *fiber.Ctx) error
	DeleteApiKey(ctx *fiber.Ctx) error
}

type apiKeyController struct {
	service  service.IApiKeyService
	enforcer *rbac.Enforcer
}

func NewApiKeyController(service service.IApiKeyService, enforcer *rbac.Enforcer) IApiKeyController {
	return &apiKeyController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *apiKeyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api-keys", c.enforcer.Require("apikeys"))
	h.Get("", c.GetApiKeys)
	h.Post("", c.CreateApiKey)
	h.Get("/:id", c.GetApiKey)
	h.Put("/:id", c.UpdateApiKey)
	h.Post("/:id/revoke", c.RevokeApiKey)
	h.Delete("/:id", c.DeleteApiKey)
}

func (c *apiKeyController) GetApiKeys(ctx *fiber.Ctx) error {
	res, err := c.service.GetApiKeys(ctx.UserContext(), serverutils.ParsePage(ctx), ctx.Query("q"))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get api keys", res))
}

func (c *apiKeyController) GetApiKey(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetApiKey(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get api key", res))
}

func (c *apiKeyController) CreateApiKey(ctx *fiber.Ctx) error {
	var req dto.ApiKeyRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateApiKey(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Api key created, store it now, it is not shown again", res))
}

func (c *apiKeyController) UpdateApiKey(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.UpdateApiKeyRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateApiKey(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Api key updated", res))
}

func (c *apiKeyController) RevokeApiKey(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.RevokeApiKey(ctx.UserContext(), actorFrom(ctx), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Api key revoked", res))
}

func (c *apiKeyController) DeleteApiKey(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteApiKey(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Api key deleted", nil))
}
