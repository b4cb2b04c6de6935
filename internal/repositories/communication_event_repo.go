package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/party-model/backend/internal/db"
	"github.com/party-model/backend/internal/models"
)

type CommunicationEventRepo struct {
	*Repo[models.CommunicationEvent]
}

func NewCommunicationEventRepo(pool db.Querier) *CommunicationEventRepo {
	return &CommunicationEventRepo{Repo: NewRepo(pool, CommunicationEventTable())}
}

var newestFirst = []string{"created_at DESC", "id DESC"}

func participant(userID int64) sq.Or {
	return sq.Or{sq.Eq{"from_user_id": userID}, sq.Eq{"to_user_id": userID}}
}

// ListForUser returns the events the user sent or received.
func (r *CommunicationEventRepo) ListForUser(ctx context.Context, userID int64) ([]models.CommunicationEvent, error) {
	return r.listWhere(ctx, participant(userID), newestFirst...)
}

func (r *CommunicationEventRepo) Inbox(ctx context.Context, userID int64) ([]models.CommunicationEvent, error) {
	return r.listWhere(ctx, sq.Eq{"to_user_id": userID}, newestFirst...)
}

func (r *CommunicationEventRepo) Sent(ctx context.Context, userID int64) ([]models.CommunicationEvent, error) {
	return r.listWhere(ctx, sq.Eq{"from_user_id": userID}, newestFirst...)
}

func (r *CommunicationEventRepo) Favorites(ctx context.Context, userID int64) ([]models.CommunicationEvent, error) {
	return r.listWhere(ctx, sq.And{participant(userID), sq.Eq{"favorite_flag": true}}, newestFirst...)
}
