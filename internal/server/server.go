package server

import (
	"time"

	"casino-admin-be/internal/bootstrap"
	"casino-admin-be/internal/config"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/tracer"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
	logger    logger.ILogger
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := NewApp(cfg)
	RegisterRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
		logger:    container.Logger,
	}
}

// NewApp builds the fiber app with the global middleware stack.
func NewApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      tracer.ServiceName,
		BodyLimit:    int(cfg.Storage.MaxUploadBytes) + 1024*1024, // upload plus multipart overhead
		ErrorHandler: serverutils.ErrorHandler,
		ReadTimeout:  30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition, X-Request-ID",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{"service": tracer.ServiceName}))
	})

	return app
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.logger.Info("SERVER", "Server is running", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

func RegisterRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	admin := api.Group("/admin")
	c.AuthController.RegisterRoutes(admin, c.JwtMiddleware)

	secured := admin.Group("", c.JwtMiddleware)
	c.ActivityHandler.RegisterRoutes(secured)
	c.DashboardController.RegisterRoutes(secured)
	c.AdminController.RegisterRoutes(secured)
	c.UserController.RegisterRoutes(secured)
	c.BonusController.RegisterRoutes(secured)
	c.CashbackController.RegisterRoutes(secured)
	c.TierController.RegisterRoutes(secured)
	c.PromotionController.RegisterRoutes(secured)
	c.BannerController.RegisterRoutes(secured)
	c.ApiKeyController.RegisterRoutes(secured)
	c.RaceController.RegisterRoutes(secured)
	c.TriviaController.RegisterRoutes(secured)
	c.UtmController.RegisterRoutes(secured)
	c.UploadController.RegisterRoutes(secured)

	c.PublicController.RegisterRoutes(api.Group("/v1"))
}
