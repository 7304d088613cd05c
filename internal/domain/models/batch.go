package models

// Batch is a departure cohort travelers may reference.
type Batch struct {
	ID            int64  `json:"id"`
	BatchName     string `json:"batch_name"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	TotalSeats    int    `json:"total_seats"`
	BookedSeats   int    `json:"booked_seats"`
	Status        string `json:"status"`
}
