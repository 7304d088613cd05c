package repositories

import (
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func countRow(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestStatsSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM travelers`).WillReturnRows(countRow(12))
	mock.ExpectQuery(`FROM travelers WHERE passport_status = 'Active'`).WillReturnRows(countRow(9))
	mock.ExpectQuery(`FROM batches WHERE status = 'Open'`).WillReturnRows(countRow(3))
	mock.ExpectQuery(`DATE\(created_at\) = CURDATE\(\)`).WillReturnRows(countRow(2))

	stats, err := StatsRepository{DB: db}.Summary()
	if err != nil {
		t.Fatalf("summary error: %v", err)
	}
	want := DashboardStats{TotalTravelers: 12, ActiveTravelers: 9, OpenBatches: 3, TodayRegistrations: 2}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardStatsJSONKeys(t *testing.T) {
	b, err := json.Marshal(DashboardStats{TotalTravelers: 1})
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"totalTravelers":1,"activeTravelers":0,"openBatches":0,"todayRegistrations":0}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}
