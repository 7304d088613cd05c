package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "alhudha-backend/internal/config"
	intdb "alhudha-backend/internal/db"
	"alhudha-backend/internal/domain"
	"alhudha-backend/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns every payment joined with the traveler's generated passport name.
func (r PaymentRepository) List() ([]models.Payment, error) {
	rows, err := r.db().Query(`
		SELECT p.id,
			   p.traveler_id,
			   COALESCE(t.passport_name, ''),
			   COALESCE(p.installment, ''),
			   p.amount,
			   COALESCE(p.due_date, ''),
			   COALESCE(p.payment_date, ''),
			   COALESCE(p.payment_method, ''),
			   COALESCE(p.status, ''),
			   COALESCE(p.remarks, ''),
			   COALESCE(p.created_at, '')
		FROM payments p
		JOIN travelers t ON p.traveler_id = t.id
		ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.ID,
			&p.TravelerID,
			&p.TravelerName,
			&p.Installment,
			&p.Amount,
			&p.DueDate,
			&p.PaymentDate,
			&p.PaymentMethod,
			&p.Status,
			&p.Remarks,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT p.id,
			   p.traveler_id,
			   COALESCE(t.passport_name, ''),
			   COALESCE(t.passport_no, ''),
			   COALESCE(p.installment, ''),
			   p.amount,
			   COALESCE(p.due_date, ''),
			   COALESCE(p.payment_date, ''),
			   COALESCE(p.payment_method, ''),
			   COALESCE(p.status, ''),
			   COALESCE(p.remarks, ''),
			   COALESCE(p.created_at, '')
		FROM payments p
		JOIN travelers t ON p.traveler_id = t.id
		WHERE p.id = ?`, id).Scan(
		&p.ID,
		&p.TravelerID,
		&p.TravelerName,
		&p.PassportNo,
		&p.Installment,
		&p.Amount,
		&p.DueDate,
		&p.PaymentDate,
		&p.PaymentMethod,
		&p.Status,
		&p.Remarks,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "Payment", Err: err}
		}
		return models.Payment{}, err
	}
	return p, nil
}

// ListByTraveler returns one traveler's installments ordered by due date.
func (r PaymentRepository) ListByTraveler(travelerID int64) ([]models.Payment, error) {
	rows, err := r.db().Query(`
		SELECT id,
			   traveler_id,
			   COALESCE(installment, ''),
			   amount,
			   COALESCE(due_date, ''),
			   COALESCE(payment_date, ''),
			   COALESCE(payment_method, ''),
			   COALESCE(status, ''),
			   COALESCE(remarks, '')
		FROM payments
		WHERE traveler_id = ?
		ORDER BY due_date`, travelerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(
			&p.ID,
			&p.TravelerID,
			&p.Installment,
			&p.Amount,
			&p.DueDate,
			&p.PaymentDate,
			&p.PaymentMethod,
			&p.Status,
			&p.Remarks,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Create records one installment and returns its id.
func (r PaymentRepository) Create(in models.Payment) (int64, error) {
	if in.TravelerID <= 0 {
		return 0, domain.ValidationError{Field: "traveler_id", Msg: "is required"}
	}
	if strings.TrimSpace(in.Status) == "" {
		in.Status = "Pending"
	}

	res, err := r.db().Exec(`
		INSERT INTO payments (traveler_id, installment, amount, due_date, payment_date, payment_method, status, remarks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.TravelerID,
		intdb.NullIfEmpty(strings.TrimSpace(in.Installment)),
		in.Amount,
		intdb.NullIfEmpty(strings.TrimSpace(in.DueDate)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PaymentDate)),
		intdb.NullIfEmpty(strings.TrimSpace(in.PaymentMethod)),
		in.Status,
		intdb.NullIfEmpty(strings.TrimSpace(in.Remarks)),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Stats aggregates the ledger; each query runs independently.
func (r PaymentRepository) Stats() (models.PaymentStats, error) {
	stats := models.PaymentStats{StatusCounts: map[string]int{}}
	db := r.db()

	if err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'Paid'`).
		Scan(&stats.TotalCollected); err != nil {
		return stats, err
	}
	if err := db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'Pending'`).
		Scan(&stats.PendingAmount); err != nil {
		return stats, err
	}

	rows, err := db.Query(`SELECT status, COUNT(*) FROM payments GROUP BY status`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return stats, err
		}
		stats.StatusCounts[status] = count
	}
	return stats, rows.Err()
}
