package session

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockSQLStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &SQLStore{DB: db, Table: "session_kv"}, mock
}

func TestNewSQLStoreCreatesTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS session_kv").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := NewSQLStore(db); err != nil {
		t.Fatalf("NewSQLStore error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLStoreGetHit(t *testing.T) {
	store, mock := newMockSQLStore(t)

	rows := sqlmock.NewRows([]string{"v"}).AddRow("tok-abc")
	mock.ExpectQuery("SELECT v FROM session_kv WHERE k = ?").
		WithArgs(KeyAccessToken).
		WillReturnRows(rows)

	v, ok, err := store.Get(KeyAccessToken)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if !ok || v != "tok-abc" {
		t.Fatalf("expected hit with tok-abc, got ok=%v v=%s", ok, v)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLStoreGetMissIsNotAnError(t *testing.T) {
	store, mock := newMockSQLStore(t)

	mock.ExpectQuery("SELECT v FROM session_kv WHERE k = ?").
		WithArgs("absent").
		WillReturnRows(sqlmock.NewRows([]string{"v"}))

	v, ok, err := store.Get("absent")
	if err != nil {
		t.Fatalf("missing key must not error: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("expected miss, got ok=%v v=%s", ok, v)
	}
}

func TestSQLStoreGetPropagatesDBError(t *testing.T) {
	store, mock := newMockSQLStore(t)

	mock.ExpectQuery("SELECT v FROM session_kv WHERE k = ?").
		WithArgs(KeyRefreshToken).
		WillReturnError(fmt.Errorf("connection reset"))

	if _, _, err := store.Get(KeyRefreshToken); err == nil {
		t.Fatalf("expected db error to propagate")
	}
}

func TestSQLStoreSetUpserts(t *testing.T) {
	store, mock := newMockSQLStore(t)

	mock.ExpectExec("INSERT INTO session_kv").
		WithArgs(KeyUserBookings, `[{"id":"BK001"}]`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := store.Set(KeyUserBookings, `[{"id":"BK001"}]`); err != nil {
		t.Fatalf("set error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLStoreRemove(t *testing.T) {
	store, mock := newMockSQLStore(t)

	mock.ExpectExec("DELETE FROM session_kv WHERE k = ?").
		WithArgs(KeyAccessToken).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := store.Remove(KeyAccessToken); err != nil {
		t.Fatalf("remove error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
