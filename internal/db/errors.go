package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/party-model/backend/internal/models"
)

// MapError converts pgx errors into model outcomes. Errors it does not
// recognise are store failures and are only wrapped.
func MapError(err error, entity string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", entity, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", entity, models.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, pgErr.ConstraintName, models.ErrConflict)
		case "23503", "23514", "22001": // foreign_key, check, string_data_right_truncation
			return fmt.Errorf("%s %s: %w", entity, pgErr.ConstraintName, models.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}
