package db

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestRunInTx_Commit(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO gender_types").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := QuerierFromCtx(ctx, nil).Exec(ctx, "INSERT INTO gender_types (description) VALUES ($1)", "male")
		return err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	}()

	_ = NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
		panic("boom")
	})
}

func TestRunInTx_BeginFails(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	called := false
	err := NewTxManager(mock).RunInTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Fatalf("expected begin error and no callback, got err=%v called=%v", err, called)
	}
}

func TestQuerierFromCtx_Fallback(t *testing.T) {
	mock := newMock(t)
	if QuerierFromCtx(context.Background(), mock) != mock {
		t.Error("expected fallback querier outside a transaction")
	}
}
