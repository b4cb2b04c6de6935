package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/party-model/backend/internal/db"
	"github.com/party-model/backend/internal/events"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func txOf(mock pgxmock.PgxPoolIface) *db.TxManager {
	return db.NewTxManager(mock)
}

var nop = zap.NewNop()

func ptr[T any](v T) *T { return &v }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, stream string, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if stream != events.StreamCommunicationEvent {
		return errors.New("unexpected stream " + stream)
	}
	p.events = append(p.events, ev)
	return p.err
}

var ceCols = []string{
	"id", "title", "detail", "from_user_id", "to_user_id",
	"contact_mechanism_type_id", "communication_event_status_type_id", "favorite_flag",
	"created_at", "updated_at",
}

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

var errNoRows = pgx.ErrNoRows
