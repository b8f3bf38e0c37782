package http

import (
	"github.com/experience-marketplace/backend/internal/config"
	"github.com/experience-marketplace/backend/internal/http/handlers"
	"github.com/experience-marketplace/backend/internal/middleware"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	campaignHandler *handlers.CampaignHandler,
	applicationHandler *handlers.ApplicationHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Rate-limited from here down
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow))

	// Auth (public)
	api.Post("/auth/signup/advertiser", authHandler.SignupAdvertiser)
	api.Post("/auth/signup/influencer", authHandler.SignupInfluencer)
	api.Post("/auth/login", authHandler.Login)

	// Meta (public)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/categories", metaHandler.GetCategories)
	api.Get("/meta/channel-kinds", metaHandler.GetChannelKinds)

	// Campaign browsing is public; a valid token personalizes the
	// detail payload with the caller's own application.
	api.Get("/campaigns", middleware.OptionalAuthMiddleware(cfg), campaignHandler.ListCampaigns)
	api.Get("/campaigns/:id", middleware.OptionalAuthMiddleware(cfg), campaignHandler.GetCampaign)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	protected.Get("/auth/profile", authHandler.GetProfile)

	// Advertiser-only
	advertiser := protected.Group("", middleware.RequireRole(models.RoleAdvertiser))
	advertiser.Post("/campaigns", campaignHandler.CreateCampaign)
	advertiser.Patch("/campaigns/:id/status", campaignHandler.UpdateCampaignStatus)
	advertiser.Get("/campaigns/:id/history", campaignHandler.GetCampaignHistory)
	advertiser.Get("/campaigns/:id/applications", applicationHandler.ListCampaignApplications)
	advertiser.Post("/campaigns/:id/select", applicationHandler.SelectApplicants)

	// Influencer-only
	influencer := protected.Group("", middleware.RequireRole(models.RoleInfluencer))
	influencer.Post("/applications", applicationHandler.CreateApplication)
	influencer.Get("/applications/my", applicationHandler.ListMyApplications)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
