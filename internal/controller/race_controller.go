package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const defaultLeaderboardSize = 10

type IRaceController interface {
	RegisterRoutes(r fiber.Router)
	GetRaces(ctx *fiber.Ctx) error
	GetRace(ctx *fiber.Ctx) error
	CreateRace(ctx *fiber.Ctx) error
	UpdateRace(ctx *fiber.Ctx) error
	DeleteRace(ctx *fiber.Ctx) error
	GetLeaderboard(ctx *fiber.Ctx) error
}

type raceController struct {
	service  service.IRaceService
	enforcer *rbac.Enforcer
}

func NewRaceController(service service.IRaceService, enforcer *rbac.Enforcer) IRaceController {
	return &raceController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *raceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/races", c.enforcer.Require("races"))
	h.Get("", c.GetRaces)
	h.Post("", c.CreateRace)
	h.Get("/:id", c.GetRace)
	h.Put("/:id", c.UpdateRace)
	h.Delete("/:id", c.DeleteRace)
	h.Get("/:id/leaderboard", c.GetLeaderboard)
}

func (c *raceController) GetRaces(ctx *fiber.Ctx) error {
	var req dto.RaceListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetRaces(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get races", res))
}

func (c *raceController) GetRace(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetRace(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get race", res))
}

func (c *raceController) CreateRace(ctx *fiber.Ctx) error {
	var req dto.RaceRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateRace(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Race created", res))
}

func (c *raceController) UpdateRace(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.RaceRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateRace(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Race updated", res))
}

func (c *raceController) DeleteRace(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteRace(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Race deleted", nil))
}

func (c *raceController) GetLeaderboard(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetLeaderboard(ctx.UserContext(), id, ctx.QueryInt("limit", defaultLeaderboardSize))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get leaderboard", res))
}
