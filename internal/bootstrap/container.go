package bootstrap

import (
	"context"
	"fmt"

	"casino-admin-be/internal/config"
	"casino-admin-be/internal/controller"
	"casino-admin-be/internal/handler"
	"casino-admin-be/internal/pkg/logger"
	"casino-admin-be/internal/pkg/mailer"
	"casino-admin-be/internal/pkg/rbac"
	"casino-admin-be/internal/pkg/serverutils"
	"casino-admin-be/internal/repository/unitofwork"
	"casino-admin-be/internal/service"
	"casino-admin-be/internal/websocket"
	"casino-admin-be/pkg/admin/account"
	"casino-admin-be/pkg/admin/apikey"
	"casino-admin-be/pkg/admin/banner"
	"casino-admin-be/pkg/admin/bonus"
	"casino-admin-be/pkg/admin/cashback"
	"casino-admin-be/pkg/admin/dashboard"
	adminEvents "casino-admin-be/pkg/admin/events"
	"casino-admin-be/pkg/admin/promotion"
	"casino-admin-be/pkg/admin/race"
	"casino-admin-be/pkg/admin/role"
	"casino-admin-be/pkg/admin/tier"
	"casino-admin-be/pkg/admin/transaction"
	"casino-admin-be/pkg/admin/trivia"
	"casino-admin-be/pkg/admin/upload"
	"casino-admin-be/pkg/admin/user"
	"casino-admin-be/pkg/admin/utm"
	pktNats "casino-admin-be/pkg/nats"
	"casino-admin-be/pkg/storage"
	"casino-admin-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	AdminController     controller.IAdminController
	UserController      controller.IUserController
	BonusController     controller.IBonusController
	CashbackController  controller.ICashbackController
	TierController      controller.ITierController
	PromotionController controller.IPromotionController
	BannerController    controller.IBannerController
	ApiKeyController    controller.IApiKeyController
	RaceController      controller.IRaceController
	TriviaController    controller.ITriviaController
	UtmController       controller.IUtmController
	UploadController    controller.IUploadController
	DashboardController controller.IDashboardController
	PublicController    controller.IPublicController
	ActivityHandler     *handler.ActivityHandler

	// JwtMiddleware authenticates every /api/admin route except login.
	JwtMiddleware fiber.Handler

	// Background workers, started by Start
	ConsumerService service.IConsumerService
	EventListener   *service.EventListener
	WebSocketHub    *websocket.Hub

	Logger logger.ILogger

	rdb     *redis.Client
	natsPub *pktNats.Publisher
	natsSub *pktNats.Subscriber
	pubSub  *gochannel.GoChannel
	bucket  *storage.Bucket
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.AdminPanelURL,
		sysLogger,
	)

	// 2. Infrastructure, every external dependency is optional except the bucket
	rdb := store.Connect(ctx, cfg.App.RedisURL, sysLogger)
	authStore := store.NewAuthStore(rdb, sysLogger, cfg.Auth.MaxLoginAttempts, cfg.Auth.LoginLockWindow)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "NATS publisher unavailable, domain events disabled", map[string]interface{}{"error": err.Error()})
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger)
	if err != nil {
		sysLogger.Warn("BOOTSTRAP", "NATS subscriber unavailable, cross-instance cache invalidation disabled", map[string]interface{}{"error": err.Error()})
	}

	bucket, err := storage.Open(ctx, cfg.Storage.BucketURL, cfg.Storage.PublicAssetBaseURL)
	if err != nil {
		return nil, fmt.Errorf("open upload bucket: %w", err)
	}

	// 3. Audit bus and activity feed
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)

	wsLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	wsHub := websocket.NewHub(rdb, wsLogger)

	auditService := service.NewAuditService(uowFactory, pubSub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, service.AuditTopic, uowFactory, wsHub, sysLogger)

	// 4. Authorization
	enforcer, err := rbac.NewEnforcer(sysLogger)
	if err != nil {
		return nil, fmt.Errorf("init rbac enforcer: %w", err)
	}
	issuer := serverutils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 5. Domain components
	eventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	adminStatuses := account.NewStatusCache(uowFactory, account.StatusTTL)
	accountManager := account.NewManager(sysLogger, eventPublisher).WithStatusCache(adminStatuses)
	roleManager := role.NewManager(sysLogger)
	userManager := user.NewManager(sysLogger, eventPublisher)
	transactionManager := transaction.NewManager(sysLogger)
	bonusManager := bonus.NewManager(sysLogger, eventPublisher)
	cashbackManager := cashback.NewManager(sysLogger)
	tierManager := tier.NewManager(sysLogger, eventPublisher)
	promotionManager := promotion.NewManager(sysLogger, eventPublisher)
	bannerManager := banner.NewManager(sysLogger)
	apiKeyManager := apikey.NewManager(sysLogger, eventPublisher)
	raceManager := race.NewManager(sysLogger, eventPublisher)
	triviaManager := trivia.NewManager(sysLogger)
	uploadManager := upload.NewManager(sysLogger, bucket, cfg.Storage.MaxUploadBytes)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)
	utmReporter := utm.NewReporter()

	// 6. Services
	adminService := service.NewAdminService(uowFactory, sysLogger, accountManager, roleManager, enforcer, emailService, auditService)
	if err := adminService.ReloadPolicy(ctx); err != nil {
		return nil, fmt.Errorf("load rbac policy: %w", err)
	}
	authService := service.NewAuthService(uowFactory, accountManager, issuer, authStore, auditService, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger, userManager, transactionManager, auditService)
	bonusService := service.NewBonusService(uowFactory, sysLogger, bonusManager, auditService)
	cashbackService := service.NewCashbackService(uowFactory, sysLogger, cashbackManager, auditService)
	tierService := service.NewTierService(uowFactory, sysLogger, tierManager, auditService)
	promotionService := service.NewPromotionService(uowFactory, sysLogger, promotionManager, auditService)
	bannerService := service.NewBannerService(uowFactory, sysLogger, bannerManager, auditService)
	apiKeyService := service.NewApiKeyService(uowFactory, sysLogger, apiKeyManager, auditService)
	raceService := service.NewRaceService(uowFactory, sysLogger, raceManager, auditService)
	triviaService := service.NewTriviaService(uowFactory, sysLogger, triviaManager, auditService)
	utmService := service.NewUtmService(uowFactory, sysLogger, utmReporter)
	uploadService := service.NewUploadService(uowFactory, sysLogger, uploadManager, auditService)
	dashboardService := service.NewDashboardService(uowFactory, sysLogger, dashboardAggregator)

	var eventListener *service.EventListener
	if natsSub != nil {
		eventListener = service.NewEventListener(natsSub, dashboardAggregator, sysLogger)
	}

	// 7. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		AdminController:     controller.NewAdminController(adminService, enforcer),
		UserController:      controller.NewUserController(userService, enforcer),
		BonusController:     controller.NewBonusController(bonusService, enforcer),
		CashbackController:  controller.NewCashbackController(cashbackService, enforcer),
		TierController:      controller.NewTierController(tierService, enforcer),
		PromotionController: controller.NewPromotionController(promotionService, enforcer),
		BannerController:    controller.NewBannerController(bannerService, enforcer),
		ApiKeyController:    controller.NewApiKeyController(apiKeyService, enforcer),
		RaceController:      controller.NewRaceController(raceService, enforcer),
		TriviaController:    controller.NewTriviaController(triviaService, enforcer),
		UtmController:       controller.NewUtmController(utmService, enforcer),
		UploadController:    controller.NewUploadController(uploadService, enforcer),
		DashboardController: controller.NewDashboardController(dashboardService, auditService, enforcer),
		PublicController:    controller.NewPublicController(apiKeyService, bannerService, promotionService, utmService),
		ActivityHandler:     handler.NewActivityHandler(wsHub, enforcer, wsLogger),

		JwtMiddleware: serverutils.JwtMiddleware(issuer, authStore, adminStatuses),

		ConsumerService: consumerService,
		EventListener:   eventListener,
		WebSocketHub:    wsHub,

		Logger: sysLogger,

		rdb:     rdb,
		natsPub: natsPub,
		natsSub: natsSub,
		pubSub:  pubSub,
		bucket:  bucket,
	}, nil
}

// Start launches the background workers. They stop when ctx is cancelled.
func (c *Container) Start(ctx context.Context) {
	go c.WebSocketHub.Run(ctx)

	if err := c.ConsumerService.Consume(ctx); err != nil {
		c.Logger.Error("BOOTSTRAP", "Audit consumer not started", map[string]interface{}{"error": err.Error()})
	}

	if c.EventListener != nil {
		if err := c.EventListener.Start(ctx); err != nil {
			c.Logger.Warn("BOOTSTRAP", "Event listener not started", map[string]interface{}{"error": err.Error()})
		}
	}
}

// Close releases external connections. Call after the HTTP server stopped.
func (c *Container) Close() {
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to close audit bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsSub != nil {
		c.natsSub.Close()
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	if err := c.bucket.Close(); err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to close upload bucket", map[string]interface{}{"error": err.Error()})
	}
}
