package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/experience-marketplace/backend/internal/channelcheck"
	"github.com/experience-marketplace/backend/internal/config"
	"github.com/experience-marketplace/backend/internal/db"
	"github.com/experience-marketplace/backend/internal/events"
	apphttp "github.com/experience-marketplace/backend/internal/http"
	"github.com/experience-marketplace/backend/internal/http/handlers"
	"github.com/experience-marketplace/backend/internal/identity"
	"github.com/experience-marketplace/backend/internal/repositories"
	"github.com/experience-marketplace/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	applicationRepo := repositories.NewApplicationRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Identity
	provider := identity.NewPostgresProvider(pool, cfg.BcryptCost)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Channel probing
	checker := channelcheck.NewChecker(cfg.ChannelProbeTimeoutMS, cfg.ChannelProbeMaxRetries, log)

	// Services
	signupService := services.NewSignupService(provider, userRepo, auditRepo, checker, log)
	campaignService := services.NewCampaignService(campaignRepo, applicationRepo, auditRepo, publisher, log)
	applicationService := services.NewApplicationService(applicationRepo, campaignRepo, auditRepo, publisher, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(cfg, signupService, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	applicationHandler := handlers.NewApplicationHandler(applicationService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, campaignHandler, applicationHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
