package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/party-model/backend/internal/db"
	"github.com/party-model/backend/internal/models"
)

// HistorySink appends snapshots of T to a history table. It has no way to
// modify or remove history rows.
type HistorySink[T any] struct {
	pool         db.Querier
	name         string
	entityColumn string
	source       Table[T]
}

func NewHistorySink[T any](pool db.Querier, name, entityColumn string, source Table[T]) *HistorySink[T] {
	return &HistorySink[T]{pool: pool, name: name, entityColumn: entityColumn, source: source}
}

// Append records rec as the state of entityID after (or, for deletes,
// before) action. action_at is assigned by the database.
func (s *HistorySink[T]) Append(ctx context.Context, entityID int64, rec *T, action models.Action, actionBy int64) error {
	cols := make([]string, 0, len(s.source.Columns)+3)
	cols = append(cols, s.entityColumn)
	cols = append(cols, s.source.Columns...)
	cols = append(cols, "action", "action_by")

	vals := make([]any, 0, len(cols))
	vals = append(vals, entityID)
	vals = append(vals, s.source.Values(rec)...)
	vals = append(vals, string(action), actionBy)

	query, args, err := psql.Insert(s.name).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return err
	}
	if _, err := db.QuerierFromCtx(ctx, s.pool).Exec(ctx, query, args...); err != nil {
		return db.MapError(err, s.name)
	}
	return nil
}

// HistoryReader reads a history table.
type HistoryReader[H any] struct {
	rows         *Repo[H]
	entityColumn string
}

func NewHistoryReader[H any](pool db.Querier, entityColumn string, table Table[H]) *HistoryReader[H] {
	return &HistoryReader[H]{rows: NewRepo(pool, table), entityColumn: entityColumn}
}

func (r *HistoryReader[H]) GetByID(ctx context.Context, id int64) (*H, error) {
	return r.rows.GetByID(ctx, id)
}

// List returns every history row, newest first.
func (r *HistoryReader[H]) List(ctx context.Context) ([]H, error) {
	return r.rows.listWhere(ctx, nil, "action_at DESC", "id DESC")
}

// ListByEntity returns the audit trail of one entity in the order it happened.
func (r *HistoryReader[H]) ListByEntity(ctx context.Context, entityID int64) ([]H, error) {
	return r.rows.listWhere(ctx, sq.Eq{r.entityColumn: entityID}, "action_at ASC", "id ASC")
}

func CommunicationEventHistorySink(pool db.Querier) *HistorySink[models.CommunicationEvent] {
	return NewHistorySink(pool, "communication_event_history", "communication_event_id", CommunicationEventTable())
}

func PersonHistorySink(pool db.Querier) *HistorySink[models.Person] {
	return NewHistorySink(pool, "person_history", "person_id", PersonTable())
}

func OrganizationHistorySink(pool db.Querier) *HistorySink[models.Organization] {
	return NewHistorySink(pool, "organization_history", "organization_id", OrganizationTable())
}

func CommunicationEventHistoryReader(pool db.Querier) *HistoryReader[models.CommunicationEventHistory] {
	return NewHistoryReader(pool, "communication_event_id", CommunicationEventHistoryTable())
}

func PersonHistoryReader(pool db.Querier) *HistoryReader[models.PersonHistory] {
	return NewHistoryReader(pool, "person_id", PersonHistoryTable())
}

func OrganizationHistoryReader(pool db.Querier) *HistoryReader[models.OrganizationHistory] {
	return NewHistoryReader(pool, "organization_id", OrganizationHistoryTable())
}

func UsersHistoryReader(pool db.Querier) *HistoryReader[models.UsersHistory] {
	return NewHistoryReader(pool, "user_id", UsersHistoryTable())
}
