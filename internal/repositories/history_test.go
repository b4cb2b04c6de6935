package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/party-model/backend/internal/models"
)

var ceHistoryCols = []string{
	"id", "communication_event_id", "title", "detail", "from_user_id", "to_user_id",
	"contact_mechanism_type_id", "communication_event_status_type_id", "favorite_flag",
	"action", "action_by", "action_at",
}

func TestHistorySink_Append(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(exact("INSERT INTO communication_event_history " +
		"(communication_event_id,title,detail,from_user_id,to_user_id,contact_mechanism_type_id," +
		"communication_event_status_type_id,favorite_flag,action,action_by) " +
		"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)")).
		WithArgs(int64(11), "Hello", pgxmock.AnyArg(), int64(1), int64(2),
			pgxmock.AnyArg(), pgxmock.AnyArg(), false, "create", int64(1)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	ev := &models.CommunicationEvent{ID: 11, Title: "Hello", FromUserID: 1, ToUserID: 2}
	err := CommunicationEventHistorySink(mock).Append(context.Background(), ev.ID, ev, models.ActionCreate, 1)
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestHistorySink_Append_Failure(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec(`INSERT INTO person_history`).WillReturnError(errors.New("disk full"))

	err := PersonHistorySink(mock).Append(context.Background(), 1, &models.Person{}, models.ActionDelete, 2)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestHistoryReader_ListByEntity(t *testing.T) {
	mock := newMock(t)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	updated := created.Add(time.Minute)
	eventID, from, to, by := int64(11), int64(1), int64(2), int64(2)
	title, retitled := "Hello", "Hello again"

	mock.ExpectQuery(`^SELECT id, communication_event_id, .* FROM communication_event_history ` +
		`WHERE communication_event_id = \$1 ORDER BY action_at ASC, id ASC$`).
		WithArgs(int64(11)).
		WillReturnRows(pgxmock.NewRows(ceHistoryCols).
			AddRow(int64(1), &eventID, &title, nil, &from, &to, nil, nil, false, models.ActionCreate, &from, created).
			AddRow(int64(2), &eventID, &retitled, nil, &from, &to, nil, nil, false, models.ActionUpdate, &by, updated))

	got, err := CommunicationEventHistoryReader(mock).ListByEntity(context.Background(), 11)
	if err != nil {
		t.Fatalf("ListByEntity() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListByEntity() returned %d rows, want 2", len(got))
	}
	if got[0].Action != models.ActionCreate || got[1].Action != models.ActionUpdate {
		t.Errorf("actions = %s, %s", got[0].Action, got[1].Action)
	}
	if *got[1].Title != "Hello again" || *got[1].ActionBy != 2 {
		t.Errorf("second row = %+v", got[1])
	}
}

func TestHistoryReader_List_NewestFirst(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM users_history ORDER BY action_at DESC, id DESC$`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "username", "email", "role", "action", "action_by", "action_at"}))

	got, err := UsersHistoryReader(mock).List(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("List() = (%v, %v)", got, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
