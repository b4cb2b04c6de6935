package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/party-model/backend/internal/logging"
	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
	"github.com/party-model/backend/internal/repositories"
)

// LookupService is CRUD for reference data. Lookups are not audited.
type LookupService[T any] struct {
	resource rbac.Resource
	store    Store[T]
	tx       TxRunner
	log      *zap.Logger
}

func NewLookupService[T any](resource rbac.Resource, store Store[T], tx TxRunner, log *zap.Logger) *LookupService[T] {
	return &LookupService[T]{resource: resource, store: store, tx: tx, log: log}
}

func (s *LookupService[T]) logger(ctx context.Context) *zap.Logger {
	return logging.FromContext(ctx, s.log).With(zap.String("entity", string(s.resource)))
}

func (s *LookupService[T]) Create(ctx context.Context, p rbac.Principal, rec *T) (*T, error) {
	log := s.logger(ctx)
	if err := rbac.Check(p, s.resource, rbac.OpCreate); err != nil {
		logMutation(log, models.ActionCreate, 0, err)
		return nil, err
	}

	var out *T
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		col, exists, err := s.store.FindConflict(ctx, rec)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s with this %s already exists: %w", s.resource, col, models.ErrConflict)
		}
		out, err = s.store.Create(ctx, rec)
		return err
	})
	if err != nil {
		logMutation(log, models.ActionCreate, 0, err)
		return nil, err
	}
	logMutation(log, models.ActionCreate, 0, nil)
	return out, nil
}

func (s *LookupService[T]) Get(ctx context.Context, p rbac.Principal, id int64) (*T, error) {
	if err := rbac.Check(p, s.resource, rbac.OpRead); err != nil {
		s.logger(ctx).Warn("read denied", zap.Int64("id", id))
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *LookupService[T]) List(ctx context.Context, p rbac.Principal) ([]T, error) {
	if err := rbac.Check(p, s.resource, rbac.OpList); err != nil {
		s.logger(ctx).Warn("list denied")
		return nil, err
	}
	return s.store.List(ctx)
}

// Update rewrites the supplied columns. An empty patch is ErrNoChange and
// does not touch the store.
func (s *LookupService[T]) Update(ctx context.Context, p rbac.Principal, id int64, patch repositories.Patch) (*T, error) {
	log := s.logger(ctx).With(zap.Strings("columns", patch.Columns()))
	if err := rbac.Check(p, s.resource, rbac.OpUpdate); err != nil {
		logMutation(log, models.ActionUpdate, id, err)
		return nil, err
	}
	if patch.Empty() {
		err := fmt.Errorf("%s %d: %w", s.resource, id, models.ErrNoChange)
		logMutation(log, models.ActionUpdate, id, err)
		return nil, err
	}

	out, err := s.store.Update(ctx, id, patch)
	logMutation(log, models.ActionUpdate, id, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LookupService[T]) Delete(ctx context.Context, p rbac.Principal, id int64) (int64, error) {
	log := s.logger(ctx)
	if err := rbac.Check(p, s.resource, rbac.OpDelete); err != nil {
		logMutation(log, models.ActionDelete, id, err)
		return 0, err
	}

	deleted, err := s.store.Delete(ctx, id)
	logMutation(log, models.ActionDelete, id, err)
	return deleted, err
}
