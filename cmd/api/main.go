package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/config"
	"github.com/party-model/backend/internal/db"
	"github.com/party-model/backend/internal/events"
	apphttp "github.com/party-model/backend/internal/http"
	"github.com/party-model/backend/internal/http/dto"
	"github.com/party-model/backend/internal/http/handlers"
	"github.com/party-model/backend/migrations"
)

func main() {
	cfg := config.Load()

	log, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, db.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
	}, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, migrations.FS, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis backs rate limiting and notifications; the API runs without it.
	var (
		rdb       *redis.Client
		publisher events.Publisher
		wsHub     *handlers.WSHub
	)
	rdb, err = db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Warn("redis unavailable, rate limiting and notifications disabled", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close()
		publisher = events.NewRedisPublisher(rdb)
		wsHub = handlers.NewWSHub(cfg.JWTSecret, events.NewRedisSubscriber(rdb, log), log)
		if err := wsHub.Start(ctx); err != nil {
			log.Warn("websocket notifications disabled", zap.Error(err))
			wsHub = nil
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
				return c.Status(code).JSON(dto.ErrorResponse{Error: "internal error"})
			}
			return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, buildRoutes(pool, publisher, log), wsHub)

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
