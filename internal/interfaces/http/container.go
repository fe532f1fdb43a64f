package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminUsecases "github.com/brt06a/Testv5/internal/application/admin/usecases"
	"github.com/brt06a/Testv5/internal/application/payment/paymentgateway"
	paymentUsecases "github.com/brt06a/Testv5/internal/application/payment/usecases"
	planUsecases "github.com/brt06a/Testv5/internal/application/plan/usecases"
	seedUsecases "github.com/brt06a/Testv5/internal/application/seed/usecases"
	"github.com/brt06a/Testv5/internal/domain/admin"
	"github.com/brt06a/Testv5/internal/domain/shared/services"
	"github.com/brt06a/Testv5/internal/infrastructure/auth"
	"github.com/brt06a/Testv5/internal/infrastructure/cache"
	"github.com/brt06a/Testv5/internal/infrastructure/config"
	"github.com/brt06a/Testv5/internal/infrastructure/email"
	infraPayment "github.com/brt06a/Testv5/internal/infrastructure/payment"
	"github.com/brt06a/Testv5/internal/infrastructure/persistence/seeds"
	"github.com/brt06a/Testv5/internal/infrastructure/ratelimit"
	"github.com/brt06a/Testv5/internal/infrastructure/scheduler"
	"github.com/brt06a/Testv5/internal/infrastructure/telegram"
	"github.com/brt06a/Testv5/internal/interfaces/http/handlers"
	"github.com/brt06a/Testv5/internal/interfaces/http/middleware"
	sharedConfig "github.com/brt06a/Testv5/internal/shared/config"
	"github.com/brt06a/Testv5/internal/shared/goroutine"
	"github.com/brt06a/Testv5/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and owns their shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	adminAuthMiddleware *middleware.AdminAuthMiddleware
	loginRateLimiter    *middleware.LoginRateLimiter

	// Infrastructure services
	gateway      paymentgateway.PaymentGateway
	sessionStore admin.SessionStore
	notifiers    []paymentUsecases.PaymentSuccessNotifier

	// Background work
	background       *goroutine.Group
	paymentScheduler *scheduler.PaymentScheduler
}

// NewContainer wires every component from cfg. Redis is only dialled when
// the session store or the login rate limit needs it.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:     gin.New(),
		db:         db,
		cfg:        cfg,
		log:        log,
		background: goroutine.NewGroup(log.Named("background")),
	}

	if err := c.initInfrastructure(ctx); err != nil {
		c.closeInfrastructure()
		return nil, err
	}

	if err := c.initUseCases(); err != nil {
		c.closeInfrastructure()
		return nil, err
	}

	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	cfg := c.cfg

	if needsRedis(cfg) {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		c.redis = client
		c.log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	}

	c.repos = newRepositories(c.db)

	switch cfg.Auth.Session.Store {
	case sharedConfig.SessionStoreRedis:
		c.sessionStore = cache.NewRedisSessionStore(c.redis)
	default:
		c.sessionStore = cache.NewMemorySessionStore()
	}

	gateway, err := infraPayment.NewGateway(cfg.Payment, c.log.Named(cfg.Payment.Gateway))
	if err != nil {
		return fmt.Errorf("failed to create payment gateway: %w", err)
	}
	c.gateway = gateway

	if cfg.Telegram.IsConfigured() {
		bot := telegram.NewBotService(cfg.Telegram)
		c.notifiers = append(c.notifiers, telegram.NewPaymentNotifier(bot, cfg.Telegram.AdminChatID, c.log.Named("telegram")))
		c.log.Infow("telegram payment notifications enabled")
	}

	if cfg.Email.IsConfigured() {
		c.notifiers = append(c.notifiers, email.NewSMTPReceiptSender(cfg.Email, cfg.Server.GetPublicBaseURL(), c.log.Named("email")))
		c.log.Infow("email receipts enabled", "smtp_host", cfg.Email.SMTPHost)
	}

	return nil
}

func needsRedis(cfg *config.Config) bool {
	return cfg.Auth.Session.Store == sharedConfig.SessionStoreRedis || cfg.Auth.LoginRateLimit.Enabled
}

func (c *Container) initUseCases() error {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	catalog, err := seeds.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("failed to load seed catalog: %w", err)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	updater := paymentUsecases.NewPaymentStatusUpdater(repos.paymentRepo, c.background, log, c.notifiers...)

	c.ucs = &allUseCases{
		listPlansUC: planUsecases.NewListPlansUseCase(repos.planRepo, log),

		statusUpdater: updater,
		createOrderUC: paymentUsecases.NewCreatePaymentOrderUseCase(
			repos.planRepo,
			repos.paymentRepo,
			c.gateway,
			services.NewOrderIDGenerator(),
			log,
			paymentUsecases.PaymentConfig{PublicBaseURL: cfg.Server.GetPublicBaseURL()},
		),
		webhookUC:       paymentUsecases.NewHandlePaymentWebhookUseCase(repos.paymentRepo, c.gateway, updater, log),
		verifyPaymentUC: paymentUsecases.NewVerifyPaymentUseCase(repos.paymentRepo, log),
		listPaymentsUC:  paymentUsecases.NewListPaymentsUseCase(repos.paymentRepo, log),
		reconcileUC: paymentUsecases.NewReconcilePendingPaymentsUseCase(
			repos.paymentRepo,
			c.gateway,
			updater,
			log,
			cfg.Payment.GetReconcileStaleAfter(),
		),

		loginUC: adminUsecases.NewLoginUseCase(
			repos.adminRepo,
			hasher,
			c.sessionStore,
			services.NewSessionTokenGenerator(),
			cfg.Auth.Session.GetTTL(),
			log,
		),
		logoutUC:       adminUsecases.NewLogoutUseCase(c.sessionStore, log),
		authenticateUC: adminUsecases.NewAuthenticateSessionUseCase(c.sessionStore, log),

		seedUC: seedUsecases.NewSeedDataUseCase(repos.planRepo, repos.adminRepo, hasher, repos.txManager, catalog, log),
	}

	c.paymentScheduler = scheduler.NewPaymentScheduler(c.ucs.reconcileUC, cfg.Payment.GetReconcileInterval(), log.Named("scheduler"))

	return nil
}

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		planHandler:    handlers.NewPlanHandler(ucs.listPlansUC, log),
		paymentHandler: handlers.NewPaymentHandler(ucs.createOrderUC, ucs.webhookUC, ucs.verifyPaymentUC, log),
		adminHandler:   handlers.NewAdminHandler(ucs.loginUC, ucs.logoutUC, ucs.listPaymentsUC, log),
		seedHandler:    handlers.NewSeedHandler(ucs.seedUC, log),
		healthHandler:  handlers.NewHealthHandler(&databasePingerAdapter{db: c.db}, log),
	}

	c.adminAuthMiddleware = middleware.NewAdminAuthMiddleware(ucs.authenticateUC, log)

	if c.cfg.Auth.LoginRateLimit.Enabled && c.redis != nil {
		rl := c.cfg.Auth.LoginRateLimit
		c.loginRateLimiter = middleware.NewLoginRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			rl.MaxAttempts,
			rl.GetWindow(),
			log,
		)
	}
}

// Shutdown stops the scheduler, waits for in-flight notifications until ctx
// is done, then releases the session store and redis.
func (c *Container) Shutdown(ctx context.Context) {
	if c.paymentScheduler != nil {
		c.paymentScheduler.Stop()
	}

	if err := c.background.Wait(ctx); err != nil {
		c.log.Warnw("background tasks did not finish before shutdown deadline", "error", err)
	}

	c.closeInfrastructure()
}

func (c *Container) closeInfrastructure() {
	if c.sessionStore != nil {
		if err := c.sessionStore.Close(); err != nil {
			c.log.Errorw("failed to close session store", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close redis client", "error", err)
		}
	}
}
