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

// HistoryAppender records snapshots of T. *repositories.HistorySink
// implements it.
type HistoryAppender[T any] interface {
	Append(ctx context.Context, entityID int64, rec *T, action models.Action, actionBy int64) error
}

// Descriptor tells the audited engine how to treat one master entity.
type Descriptor[T any] struct {
	Resource rbac.Resource
	ID       func(*T) int64
	// Owners lists the users an ownership-gated rule accepts. Nil for
	// purely role-gated resources.
	Owners func(*T) []int64
	// Prepare fixes server-controlled fields before insert.
	Prepare func(p rbac.Principal, rec *T)
}

// AuditedService is CRUD for master entities. Every successful mutation
// writes exactly one history row in the same transaction.
type AuditedService[T any] struct {
	d       Descriptor[T]
	store   Store[T]
	history HistoryAppender[T]
	tx      TxRunner
	log     *zap.Logger
}

func NewAuditedService[T any](d Descriptor[T], store Store[T], history HistoryAppender[T], tx TxRunner, log *zap.Logger) *AuditedService[T] {
	return &AuditedService[T]{d: d, store: store, history: history, tx: tx, log: log}
}

func (s *AuditedService[T]) logger(ctx context.Context) *zap.Logger {
	return logging.FromContext(ctx, s.log).With(zap.String("entity", string(s.d.Resource)))
}

func (s *AuditedService[T]) check(p rbac.Principal, op rbac.Operation, rec *T) error {
	var owners []int64
	if rec != nil && s.d.Owners != nil {
		owners = s.d.Owners(rec)
	}
	return rbac.Check(p, s.d.Resource, op, owners...)
}

// authorize checks role-gated operations before the store is touched.
// Ownership-gated operations are checked by load.
func (s *AuditedService[T]) authorize(p rbac.Principal, op rbac.Operation) error {
	if rbac.OwnershipGated(s.d.Resource, op) {
		return nil
	}
	return s.check(p, op, nil)
}

func (s *AuditedService[T]) load(ctx context.Context, p rbac.Principal, op rbac.Operation, id int64) (*T, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rbac.OwnershipGated(s.d.Resource, op) {
		if err := s.check(p, op, rec); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func (s *AuditedService[T]) Create(ctx context.Context, p rbac.Principal, rec *T) (*T, error) {
	log := s.logger(ctx)
	if err := s.check(p, rbac.OpCreate, nil); err != nil {
		logMutation(log, models.ActionCreate, 0, err)
		return nil, err
	}
	if s.d.Prepare != nil {
		s.d.Prepare(p, rec)
	}

	var out *T
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		col, exists, err := s.store.FindConflict(ctx, rec)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s with this %s already exists: %w", s.d.Resource, col, models.ErrConflict)
		}
		if out, err = s.store.Create(ctx, rec); err != nil {
			return err
		}
		return s.history.Append(ctx, s.d.ID(out), out, models.ActionCreate, p.ID)
	})
	if err != nil {
		logMutation(log, models.ActionCreate, 0, err)
		return nil, err
	}
	logMutation(log, models.ActionCreate, s.d.ID(out), nil)
	return out, nil
}

func (s *AuditedService[T]) Get(ctx context.Context, p rbac.Principal, id int64) (*T, error) {
	if err := s.authorize(p, rbac.OpRead); err != nil {
		s.logger(ctx).Warn("read denied", zap.Int64("id", id))
		return nil, err
	}
	rec, err := s.load(ctx, p, rbac.OpRead, id)
	if err != nil && expected(err) {
		s.logger(ctx).Warn("read rejected", zap.Int64("id", id), zap.Error(err))
	}
	return rec, err
}

func (s *AuditedService[T]) List(ctx context.Context, p rbac.Principal) ([]T, error) {
	if err := s.check(p, rbac.OpList, nil); err != nil {
		s.logger(ctx).Warn("list denied")
		return nil, err
	}
	return s.store.List(ctx)
}

// Update applies patch and records the stored post-state, so the history
// row carries every column, not only the changed ones.
func (s *AuditedService[T]) Update(ctx context.Context, p rbac.Principal, id int64, patch repositories.Patch) (*T, error) {
	log := s.logger(ctx).With(zap.Strings("columns", patch.Columns()))
	if err := s.authorize(p, rbac.OpUpdate); err != nil {
		logMutation(log, models.ActionUpdate, id, err)
		return nil, err
	}

	var out *T
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.load(ctx, p, rbac.OpUpdate, id); err != nil {
			return err
		}
		if patch.Empty() {
			return fmt.Errorf("%s %d: %w", s.d.Resource, id, models.ErrNoChange)
		}

		var err error
		if out, err = s.store.Update(ctx, id, patch); err != nil {
			return err
		}
		return s.history.Append(ctx, id, out, models.ActionUpdate, p.ID)
	})
	logMutation(log, models.ActionUpdate, id, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete records the pre-delete snapshot and removes the row.
func (s *AuditedService[T]) Delete(ctx context.Context, p rbac.Principal, id int64) (int64, error) {
	if err := s.authorize(p, rbac.OpDelete); err != nil {
		logMutation(s.logger(ctx), models.ActionDelete, id, err)
		return 0, err
	}

	var deleted int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rec, err := s.load(ctx, p, rbac.OpDelete, id)
		if err != nil {
			return err
		}
		if err := s.history.Append(ctx, id, rec, models.ActionDelete, p.ID); err != nil {
			return err
		}
		deleted, err = s.store.Delete(ctx, id)
		return err
	})
	logMutation(s.logger(ctx), models.ActionDelete, id, err)
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
