package repositories

import (
	"testing"

	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPaymentCreate_RequiresTraveler(t *testing.T) {
	_, err := PaymentRepository{}.Create(models.Payment{Amount: 50000})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPaymentCreate_DefaultsStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(4), "First Installment", 50000.0, "2024-03-01", nil, nil, "Pending", nil).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := PaymentRepository{DB: db}.Create(models.Payment{
		TravelerID:  4,
		Installment: "First Installment",
		Amount:      50000,
		DueDate:     "2024-03-01",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM payments p").
		WithArgs(int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = PaymentRepository{DB: db}.GetByID(77)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestPaymentStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SUM\(amount\), 0\) FROM payments WHERE status = 'Paid'`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(125000.0))
	mock.ExpectQuery(`SUM\(amount\), 0\) FROM payments WHERE status = 'Pending'`).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(40000.0))
	mock.ExpectQuery("GROUP BY status").WillReturnRows(
		sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Paid", 5).
			AddRow("Pending", 2))

	stats, err := PaymentRepository{DB: db}.Stats()
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if stats.TotalCollected != 125000 || stats.PendingAmount != 40000 {
		t.Fatalf("sums wrong: %+v", stats)
	}
	if stats.StatusCounts["Paid"] != 5 || stats.StatusCounts["Pending"] != 2 {
		t.Fatalf("status counts wrong: %v", stats.StatusCounts)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
