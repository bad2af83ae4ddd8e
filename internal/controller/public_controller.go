package controller

import (
	"casino-admin-be/internal/dto"
	"casino-admin-be/internal/entity"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const ApiKeyHeader = "X-API-Key"

// IPublicController serves the machine facing routes authenticated by API key.
type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	GetBanners(ctx *fiber.Ctx) error
	GetPromotions(ctx *fiber.Ctx) error
	TrackUtm(ctx *fiber.Ctx) error
}

type publicController struct {
	apiKeyService    service.IApiKeyService
	bannerService    service.IBannerService
	promotionService service.IPromotionService
	utmService       service.IUtmService
}

func NewPublicController(apiKeyService service.IApiKeyService, bannerService service.IBannerService, promotionService service.IPromotionService, utmService service.IUtmService) IPublicController {
	return &publicController{
		apiKeyService:    apiKeyService,
		bannerService:    bannerService,
		promotionService: promotionService,
		utmService:       utmService,
	}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	r.Get("/banners", c.requireScope(entity.ScopeContentRead), c.GetBanners)
	r.Get("/promotions", c.requireScope(entity.ScopeContentRead), c.GetPromotions)
	r.Post("/tracking/utm", c.requireScope(entity.ScopeUtmWrite), c.TrackUtm)
}

func (c *publicController) requireScope(scope string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if _, err := c.apiKeyService.Authenticate(ctx.UserContext(), ctx.Get(ApiKeyHeader), scope); err != nil {
			return serverutils.HandleError(ctx, err)
		}
		return ctx.Next()
	}
}

func (c *publicController) GetBanners(ctx *fiber.Ctx) error {
	res, err := c.bannerService.GetLiveBanners(ctx.UserContext(), ctx.Query("placement"))
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get banners", res))
}

func (c *publicController) GetPromotions(ctx *fiber.Ctx) error {
	res, err := c.promotionService.GetLivePromotions(ctx.UserContext())
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get promotions", res))
}

func (c *publicController) TrackUtm(ctx *fiber.Ctx) error {
	var req dto.UtmEventRequest
	if err := serverutils.BindAndValidate(ctx, &req); err != nil {
		return serverutils.HandleError(ctx, err)
	}

	res, err := c.utmService.Ingest(ctx.UserContext(), req)
	if err != nil {
		return serverutils.HandleError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Event recorded", res))
}
