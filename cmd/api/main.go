package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/class-marketplace/internal/api/http"
	"github.com/spec-kit/class-marketplace/internal/api/http/handlers"
	"github.com/spec-kit/class-marketplace/internal/auth"
	"github.com/spec-kit/class-marketplace/internal/config"
	"github.com/spec-kit/class-marketplace/internal/events"
	"github.com/spec-kit/class-marketplace/internal/observability"
	"github.com/spec-kit/class-marketplace/internal/payment"
	"github.com/spec-kit/class-marketplace/internal/persistence"
	"github.com/spec-kit/class-marketplace/internal/repository"
	"github.com/spec-kit/class-marketplace/internal/service"
	"github.com/spec-kit/class-marketplace/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	gateway, err := payment.NewStripeGateway(cfg.Payment)
	if err != nil {
		logger.Fatal("failed to init payment gateway", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	accountService := service.NewAccountService(*cfg, service.AccountDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ClassRepo:      classRepo,
		InstructorRepo: instructorRepo,
		Cache:          persistence.NewRedisCache(redis),
		CacheTTL:       cfg.Redis.CacheTTL(),
		Dispatcher:     dispatcher,
		Logger:         logger,
	})
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(service.CheckoutDependencies{
		PaymentRepo: paymentRepo,
		CartRepo:    cartRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	statsService := service.NewStatsService(userRepo, cartRepo, paymentRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(accountService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(accountService),
		Users:          handlers.NewUsersHandler(accountService),
		Classes:        handlers.NewClassesHandler(catalogService),
		Instructors:    handlers.NewInstructorsHandler(catalogService),
		Carts:          handlers.NewCartsHandler(cartService),
		Payments:       handlers.NewPaymentsHandler(gateway, checkoutService),
		Stats:          handlers.NewStatsHandler(statsService),
		AuthMiddleware: authMiddleware,
		UserRepo:       userRepo,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
