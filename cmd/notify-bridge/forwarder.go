package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/party-model/backend/internal/events"
)

// forwarder POSTs each event as JSON to a webhook. Failed deliveries are
// logged and dropped.
type forwarder struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

func newForwarder(url string, timeout time.Duration, log *zap.Logger) *forwarder {
	return &forwarder{url: url, client: &http.Client{Timeout: timeout}, log: log}
}

func (f *forwarder) handle(ctx context.Context, event events.Event) {
	if err := f.forward(ctx, event); err != nil {
		f.log.Error("failed to forward event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	f.log.Debug("event forwarded", zap.String("type", event.Type))
}

func (f *forwarder) forward(ctx context.Context, event events.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}
