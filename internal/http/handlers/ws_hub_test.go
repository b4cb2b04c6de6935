package handlers

import (
	"reflect"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/events"
)

func TestRecipients(t *testing.T) {
	tests := []struct {
		name string
		p    events.CommunicationEventPayload
		want []int64
	}{
		{"sender created", events.CommunicationEventPayload{FromUserID: 1, ToUserID: 2, ActionBy: 1}, []int64{2}},
		{"recipient updated", events.CommunicationEventPayload{FromUserID: 1, ToUserID: 2, ActionBy: 2}, []int64{1}},
		{"note to self", events.CommunicationEventPayload{FromUserID: 1, ToUserID: 1, ActionBy: 1}, nil},
		{"third party", events.CommunicationEventPayload{FromUserID: 1, ToUserID: 2, ActionBy: 9}, []int64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recipients(tt.p); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("recipients() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWSHub_RegisterUnregister(t *testing.T) {
	h := NewWSHub("s", nil, zap.NewNop())
	a, b := &websocket.Conn{}, &websocket.Conn{}

	h.register(7, a)
	h.register(7, b)
	if n := h.connected(7); n != 2 {
		t.Fatalf("connected(7) = %d, want 2", n)
	}

	h.unregister(7, a)
	h.unregister(7, b)
	if n := h.connected(7); n != 0 {
		t.Fatalf("connected(7) = %d, want 0", n)
	}
	if _, ok := h.connections[7]; ok {
		t.Error("empty connection list should be removed")
	}
}
