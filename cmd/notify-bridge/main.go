package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/party-model/backend/internal/config"
	"github.com/party-model/backend/internal/db"
	"github.com/party-model/backend/internal/events"
)

func main() {
	cfg := config.Load()

	log, err := cfg.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.NotifyWebhookURL == "" {
		log.Fatal("NOTIFY_WEBHOOK_URL is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	fwd := newForwarder(cfg.NotifyWebhookURL, 10*time.Second, log)

	subscriber := events.NewRedisSubscriber(rdb, log)
	if err := subscriber.Subscribe(ctx, events.StreamCommunicationEvent, func(event events.Event) {
		fwd.handle(ctx, event)
	}); err != nil {
		log.Fatal("failed to subscribe", zap.Error(err))
	}

	log.Info("notify bridge started",
		zap.String("stream", events.StreamCommunicationEvent),
		zap.String("webhook", cfg.NotifyWebhookURL))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info("shutting down notify bridge")
}
