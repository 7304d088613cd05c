package repositories

import (
	"database/sql"

	intconfig "alhudha-backend/internal/config"
)

// DashboardStats holds the admin dashboard counters. The four numbers are
// computed by independent queries, so they may reflect slightly different
// moments under concurrent writes.
type DashboardStats struct {
	TotalTravelers     int `json:"totalTravelers"`
	ActiveTravelers    int `json:"activeTravelers"`
	OpenBatches        int `json:"openBatches"`
	TodayRegistrations int `json:"todayRegistrations"`
}

type StatsRepository struct {
	DB *sql.DB
}

func (r StatsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Summary evaluates each counter on demand; no caching.
func (r StatsRepository) Summary() (DashboardStats, error) {
	var stats DashboardStats
	db := r.db()

	if err := db.QueryRow(`SELECT COUNT(*) FROM travelers`).
		Scan(&stats.TotalTravelers); err != nil {
		return stats, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM travelers WHERE passport_status = 'Active'`).
		Scan(&stats.ActiveTravelers); err != nil {
		return stats, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM batches WHERE status = 'Open'`).
		Scan(&stats.OpenBatches); err != nil {
		return stats, err
	}
	// CURDATE keeps "today" on the storage engine's clock.
	if err := db.QueryRow(`SELECT COUNT(*) FROM travelers WHERE DATE(created_at) = CURDATE()`).
		Scan(&stats.TodayRegistrations); err != nil {
		return stats, err
	}
	return stats, nil
}
