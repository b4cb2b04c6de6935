package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/events"
)

func TestForward_PostsEventJSON(t *testing.T) {
	var got events.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	event, err := events.New(events.EventCommunicationEventCreated, events.CommunicationEventPayload{
		ID: 7, Title: "hello", FromUserID: 1, ToUserID: 2, ActionBy: 1,
	})
	require.NoError(t, err)

	f := newForwarder(srv.URL, time.Second, zap.NewNop())
	require.NoError(t, f.forward(context.Background(), event))

	assert.Equal(t, events.EventCommunicationEventCreated, got.Type)
	var payload events.CommunicationEventPayload
	require.NoError(t, got.Decode(&payload))
	assert.Equal(t, int64(7), payload.ID)
	assert.Equal(t, int64(2), payload.ToUserID)
}

func TestForward_RejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newForwarder(srv.URL, time.Second, zap.NewNop())
	err := f.forward(context.Background(), events.Event{Type: events.EventCommunicationEventUpdated})
	assert.ErrorContains(t, err, "502")
}

func TestForward_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := newForwarder(url, time.Second, zap.NewNop())
	assert.Error(t, f.forward(context.Background(), events.Event{Type: events.EventCommunicationEventCreated}))
}
