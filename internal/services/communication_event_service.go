package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/party-model/backend/internal/events"
	"github.com/party-model/backend/internal/logging"
	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
	"github.com/party-model/backend/internal/repositories"
)

type CommunicationEventStore interface {
	Store[models.CommunicationEvent]
	ListForUser(ctx context.Context, userID int64) ([]models.CommunicationEvent, error)
	Inbox(ctx context.Context, userID int64) ([]models.CommunicationEvent, error)
	Sent(ctx context.Context, userID int64) ([]models.CommunicationEvent, error)
	Favorites(ctx context.Context, userID int64) ([]models.CommunicationEvent, error)
}

// CommunicationEventService is the audited engine for communication events
// plus the per-user projections. Callers only ever list events they take
// part in.
type CommunicationEventService struct {
	*AuditedService[models.CommunicationEvent]
	store     CommunicationEventStore
	publisher events.Publisher
	log       *zap.Logger
}

// NewCommunicationEventService accepts a nil publisher, in which case no
// notifications are sent.
func NewCommunicationEventService(
	store CommunicationEventStore,
	history HistoryAppender[models.CommunicationEvent],
	tx TxRunner,
	publisher events.Publisher,
	log *zap.Logger,
) *CommunicationEventService {
	return &CommunicationEventService{
		AuditedService: NewAuditedService(CommunicationEventDescriptor, store, history, tx, log),
		store:          store,
		publisher:      publisher,
		log:            log,
	}
}

func (s *CommunicationEventService) Create(ctx context.Context, p rbac.Principal, rec *models.CommunicationEvent) (*models.CommunicationEvent, error) {
	out, err := s.AuditedService.Create(ctx, p, rec)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, events.EventCommunicationEventCreated, out, p.ID)
	return out, nil
}

func (s *CommunicationEventService) Update(ctx context.Context, p rbac.Principal, id int64, patch repositories.Patch) (*models.CommunicationEvent, error) {
	out, err := s.AuditedService.Update(ctx, p, id, patch)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, events.EventCommunicationEventUpdated, out, p.ID)
	return out, nil
}

// List returns the caller's sent and received events.
func (s *CommunicationEventService) List(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error) {
	return s.project(ctx, p, s.store.ListForUser)
}

func (s *CommunicationEventService) Inbox(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error) {
	return s.project(ctx, p, s.store.Inbox)
}

func (s *CommunicationEventService) Sent(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error) {
	return s.project(ctx, p, s.store.Sent)
}

func (s *CommunicationEventService) Favorites(ctx context.Context, p rbac.Principal) ([]models.CommunicationEvent, error) {
	return s.project(ctx, p, s.store.Favorites)
}

func (s *CommunicationEventService) project(
	ctx context.Context,
	p rbac.Principal,
	fetch func(context.Context, int64) ([]models.CommunicationEvent, error),
) ([]models.CommunicationEvent, error) {
	if err := rbac.Check(p, rbac.ResCommunicationEvents, rbac.OpList); err != nil {
		return nil, err
	}
	return fetch(ctx, p.ID)
}

// notify runs after commit. A failed publish is logged and otherwise ignored.
func (s *CommunicationEventService) notify(ctx context.Context, eventType string, e *models.CommunicationEvent, actionBy int64) {
	if s.publisher == nil {
		return
	}
	log := logging.FromContext(ctx, s.log)

	ev, err := events.New(eventType, events.CommunicationEventPayload{
		ID:         e.ID,
		Title:      e.Title,
		FromUserID: e.FromUserID,
		ToUserID:   e.ToUserID,
		ActionBy:   actionBy,
	})
	if err != nil {
		log.Error("failed to build event", zap.String("type", eventType), zap.Error(err))
		return
	}
	if err := s.publisher.Publish(ctx, events.StreamCommunicationEvent, ev); err != nil {
		log.Warn("failed to publish event", zap.String("type", eventType), zap.Int64("id", e.ID), zap.Error(err))
	}
}
