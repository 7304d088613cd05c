package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestNullIfEmpty(t *testing.T) {
	if NullIfEmpty("") != nil {
		t.Fatal("empty string should map to nil")
	}
	if got := NullIfEmpty("x"); got != "x" {
		t.Fatalf("got %v, want x", got)
	}
}

func TestHasTable(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("travelers").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("travelers"))
	mock.ExpectQuery("FROM information_schema.tables").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	if !HasTable(conn, "travelers") {
		t.Fatal("existing table reported missing")
	}
	if HasTable(conn, "missing") {
		t.Fatal("missing table reported present")
	}
}
