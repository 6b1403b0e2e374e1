package models

// Expense is a single spending record. Date is a YYYY-MM-DD string and
// CreatedAt an ISO-8601 timestamp, matching the on-disk JSON format.
// Records without a UserID predate per-user namespacing; they are kept
// on disk but excluded from every per-user query.
type Expense struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
	CreatedAt   string  `json:"created_at"`
}
