package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/party-model/backend/internal/logging"
	"github.com/party-model/backend/internal/rbac"
)

// HistoryStore is satisfied by *repositories.HistoryReader.
type HistoryStore[H any] interface {
	GetByID(ctx context.Context, id int64) (*H, error)
	List(ctx context.Context) ([]H, error)
	ListByEntity(ctx context.Context, entityID int64) ([]H, error)
}

// HistoryService serves audit trails. History is read-only through it.
type HistoryService[H any] struct {
	resource rbac.Resource
	store    HistoryStore[H]
	log      *zap.Logger
}

func NewHistoryService[H any](resource rbac.Resource, store HistoryStore[H], log *zap.Logger) *HistoryService[H] {
	return &HistoryService[H]{resource: resource, store: store, log: log}
}

func (s *HistoryService[H]) authorize(ctx context.Context, p rbac.Principal, op rbac.Operation) error {
	if err := rbac.Check(p, s.resource, op); err != nil {
		logging.FromContext(ctx, s.log).Warn("history access denied",
			zap.String("entity", string(s.resource)), zap.String("role", p.Role))
		return err
	}
	return nil
}

func (s *HistoryService[H]) Get(ctx context.Context, p rbac.Principal, id int64) (*H, error) {
	if err := s.authorize(ctx, p, rbac.OpRead); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *HistoryService[H]) List(ctx context.Context, p rbac.Principal) ([]H, error) {
	if err := s.authorize(ctx, p, rbac.OpList); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

// ListByEntity returns one entity's trail, oldest first.
func (s *HistoryService[H]) ListByEntity(ctx context.Context, p rbac.Principal, entityID int64) ([]H, error) {
	if err := s.authorize(ctx, p, rbac.OpList); err != nil {
		return nil, err
	}
	return s.store.ListByEntity(ctx, entityID)
}
