package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/config"
	"github.com/party-model/backend/internal/http/handlers"
	"github.com/party-model/backend/internal/middleware"
)

type Registrar interface {
	Register(r fiber.Router)
}

// Route mounts handlers under /api/v1/<Path>. Handlers register in order,
// so fixed segments go before parameterised ones.
type Route struct {
	Path     string
	Handlers []Registrar
}

// SetupRouter installs middleware and routes. rdb and wsHub may be nil, in
// which case rate limiting and the websocket endpoint are skipped.
func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	routes []Route,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/roles", metaHandler.GetRoles)

	if rdb != nil {
		api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, cfg.RateLimitWindow, log))
	}

	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret, log))
	for _, route := range routes {
		group := protected.Group("/" + route.Path)
		for _, h := range route.Handlers {
			h.Register(group)
		}
	}

	if wsHub != nil {
		app.Use("/ws", handlers.WSUpgradeMiddleware())
		app.Get("/ws", websocket.New(wsHub.HandleWS))
	}
}
