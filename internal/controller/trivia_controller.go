package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITriviaController interface {
	RegisterRoutes(r fiber.Router)
	GetQuestions(ctx *fiber.Ctx) error
	GetQuestion(ctx *fiber.Ctx) error
	CreateQuestion(ctx *fiber.Ctx) error
	UpdateQuestion(ctx *fiber.Ctx) error
	DeleteQuestion(ctx *fiber.Ctx) error
	ImportQuestions(ctx *fiber.Ctx) error
}

type triviaController struct {
	service  service.ITriviaService
	enforcer *rbac.Enforcer
}

func NewTriviaController(service service.ITriviaService, enforcer *rbac.Enforcer) ITriviaController {
	return &triviaController{
		service:  service,
		enforcer: enforcer,
	}
}

func (c *triviaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/trivia", c.enforcer.Require("trivia"))
	h.Get("", c.GetQuestions)
	h.Post("", c.CreateQuestion)
	h.Post("/import", c.ImportQuestions)
	h.Get("/:id", c.GetQuestion)
	h.Put("/:id", c.UpdateQuestion)
	h.Delete("/:id", c.DeleteQuestion)
}

func (c *triviaController) GetQuestions(ctx *fiber.Ctx) error {
	var req dto.TriviaListRequest
	if err := bindQuery(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetQuestions(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get trivia questions", res))
}

func (c *triviaController) GetQuestion(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.GetQuestion(ctx.UserContext(), id)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get trivia question", res))
}

func (c *triviaController) CreateQuestion(ctx *fiber.Ctx) error {
	var req dto.TriviaRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.CreateQuestion(ctx.UserContext(), actorFrom(ctx), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Trivia question created", res))
}

func (c *triviaController) UpdateQuestion(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	var req dto.TriviaRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.UpdateQuestion(ctx.UserContext(), actorFrom(ctx), id, req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Trivia question updated", res))
}

func (c *triviaController) DeleteQuestion(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	if err := c.service.DeleteQuestion(ctx.UserContext(), actorFrom(ctx), id); err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Trivia question deleted", nil))
}

func (c *triviaController) ImportQuestions(ctx *fiber.Ctx) error {
	_, data, err := readFormFile(ctx, "file")
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.service.ImportQuestions(ctx.UserContext(), actorFrom(ctx), data)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Trivia import finished", res))
}
