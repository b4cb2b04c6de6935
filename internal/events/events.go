package events

import (
	"context"
	"encoding/json"
	"time"
)

// StreamCommunicationEvent carries notifications about communication events.
const StreamCommunicationEvent = "events:communication_event"

// Event types
const (
	EventCommunicationEventCreated = "communication_event.created"
	EventCommunicationEventUpdated = "communication_event.updated"
)

type Event struct {
	Type    string          `json:"type"`
	At      time.Time       `json:"at"`
	Payload json.RawMessage `json:"payload"`
}

// CommunicationEventPayload is the body of communication_event.* events.
type CommunicationEventPayload struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	FromUserID int64  `json:"from_user_id"`
	ToUserID   int64  `json:"to_user_id"`
	ActionBy   int64  `json:"action_by"`
}

func New(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, At: time.Now().UTC(), Payload: data}, nil
}

// Decode unmarshals the payload into v.
func (e Event) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
