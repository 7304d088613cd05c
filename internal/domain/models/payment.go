package models

// Payment is one installment collected from a traveler.
type Payment struct {
	ID            int64   `json:"id"`
	TravelerID    int64   `json:"traveler_id"`
	TravelerName  string  `json:"traveler_name,omitempty"`
	PassportNo    string  `json:"passport_no,omitempty"`
	Installment   string  `json:"installment"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
	Remarks       string  `json:"remarks"`
	CreatedAt     string  `json:"created_at"`
}

// PaymentStats aggregates the payments ledger.
type PaymentStats struct {
	TotalCollected float64        `json:"total_collected"`
	PendingAmount  float64        `json:"pending_amount"`
	StatusCounts   map[string]int `json:"status_counts"`
}
