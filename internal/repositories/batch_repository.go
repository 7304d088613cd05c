package repositories

import (
	"database/sql"

	intconfig "alhudha-backend/internal/config"
	"alhudha-backend/internal/domain/models"
)

type BatchRepository struct {
	DB *sql.DB
}

func (r BatchRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns every batch with its seat/status summary, earliest departure first.
func (r BatchRepository) List() ([]models.Batch, error) {
	rows, err := r.db().Query(`
		SELECT id,
			   COALESCE(batch_name, ''),
			   COALESCE(departure_date, ''),
			   COALESCE(return_date, ''),
			   total_seats,
			   booked_seats,
			   COALESCE(status, '')
		FROM batches
		ORDER BY departure_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []models.Batch{}
	for rows.Next() {
		var b models.Batch
		if err := rows.Scan(
			&b.ID,
			&b.BatchName,
			&b.DepartureDate,
			&b.ReturnDate,
			&b.TotalSeats,
			&b.BookedSeats,
			&b.Status,
		); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
