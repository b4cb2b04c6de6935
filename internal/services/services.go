package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/party-model/backend/internal/models"
	"github.com/party-model/backend/internal/rbac"
	"github.com/party-model/backend/internal/repositories"
)

// Resource is the operation set every CRUD resource exposes to transport.
type Resource[T any] interface {
	Create(ctx context.Context, p rbac.Principal, rec *T) (*T, error)
	Get(ctx context.Context, p rbac.Principal, id int64) (*T, error)
	List(ctx context.Context, p rbac.Principal) ([]T, error)
	Update(ctx context.Context, p rbac.Principal, id int64, patch repositories.Patch) (*T, error)
	Delete(ctx context.Context, p rbac.Principal, id int64) (int64, error)
}

// Store is the persistence a CRUD resource needs. *repositories.Repo
// implements it.
type Store[T any] interface {
	FindConflict(ctx context.Context, rec *T) (string, bool, error)
	Create(ctx context.Context, rec *T) (*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id int64, patch repositories.Patch) (*T, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// expected reports whether err is a taxonomy outcome rather than a store failure.
func expected(err error) bool {
	return errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrConflict) ||
		errors.Is(err, models.ErrForbidden) ||
		errors.Is(err, models.ErrNoChange) ||
		errors.Is(err, models.ErrValidation)
}

// logMutation logs the outcome of a create, update or delete. Store
// failures are left to the transport layer.
func logMutation(log *zap.Logger, action models.Action, id int64, err error) {
	fields := []zap.Field{zap.String("action", string(action))}
	if id != 0 {
		fields = append(fields, zap.Int64("id", id))
	}
	switch {
	case err == nil:
		log.Info("mutation applied", fields...)
	case expected(err):
		log.Warn("mutation rejected", append(fields, zap.Error(err))...)
	}
}
