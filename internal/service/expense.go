package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/LSkevi/PieTracker/internal/currency"
	"github.com/LSkevi/PieTracker/internal/models"
	"github.com/LSkevi/PieTracker/internal/store"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/google/uuid"
)

// ExpenseService owns per-user expense CRUD and aggregation.
type ExpenseService struct {
	store store.Store
	now   func() time.Time
}

func NewExpenseService(st store.Store) *ExpenseService {
	return &ExpenseService{store: st, now: time.Now}
}

// CreateExpenseInput is the client-supplied part of an expense.
type CreateExpenseInput struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
}

// MonthRef is one year-month that has at least one expense.
type MonthRef struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	YearMonth string `json:"year_month"`
}

// Summary aggregates a month's expenses.
type Summary struct {
	Month        string             `json:"month"`
	Total        float64            `json:"total"`
	Categories   map[string]float64 `json:"categories"`
	ExpenseCount int                `json:"expense_count"`
}

// List returns all of the user's expenses. Records without a user_id
// (pre-migration legacy rows) never match.
func (s *ExpenseService) List(userID string) []models.Expense {
	out := make([]models.Expense, 0)
	for _, e := range s.store.Expenses() {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// ListMonth filters the user's expenses to one year-month.
func (s *ExpenseService) ListMonth(userID string, year, month int) []models.Expense {
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	out := make([]models.Expense, 0)
	for _, e := range s.store.Expenses() {
		if e.UserID == userID && strings.HasPrefix(e.Date, prefix) {
			out = append(out, e)
		}
	}
	return out
}

// Create validates the input, stamps id, owner and creation time, and
// persists the record. The owner is immutable from then on.
func (s *ExpenseService) Create(userID string, in CreateExpenseInput) (models.Expense, error) {
	if err := util.ValidateAmount(in.Amount); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	in.Category = strings.TrimSpace(in.Category)
	if err := util.ValidateCategoryName(in.Category); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	now := s.now()
	if in.Date == "" {
		in.Date = now.Format("2006-01-02")
	}
	if err := util.ValidateDate(in.Date); err != nil {
		return models.Expense{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	code := strings.ToUpper(strings.TrimSpace(in.Currency))
	if !currency.IsSupported(code) {
		code = currency.FallbackCode
	}

	if err := s.store.EnsureInitialized(userID); err != nil {
		return models.Expense{}, fmt.Errorf("init namespace: %w", err)
	}

	e := models.Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		Currency:    code,
		CreatedAt:   now.Format(time.RFC3339),
	}
	if err := s.store.AppendExpense(e); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// Delete removes the record only when it belongs to the user. A
// cross-user (or unknown) id is a no-op, not an error, so the caller
// learns nothing about other users' records; the boolean reports
// whether anything was removed.
func (s *ExpenseService) Delete(userID, id string) (bool, error) {
	all := s.store.Expenses()
	kept := make([]models.Expense, 0, len(all))
	removed := false
	for _, e := range all {
		if e.ID == id && e.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return false, nil
	}
	return true, s.store.ReplaceExpenses(kept)
}

// MonthlySummary totals one month's expenses overall and per category.
func (s *ExpenseService) MonthlySummary(userID string, year, month int) Summary {
	monthly := s.ListMonth(userID, year, month)

	totals := make(map[string]float64)
	var total float64
	for _, e := range monthly {
		totals[e.Category] += e.Amount
		total += e.Amount
	}

	return Summary{
		Month:        fmt.Sprintf("%04d-%02d", year, month),
		Total:        total,
		Categories:   totals,
		ExpenseCount: len(monthly),
	}
}

// AvailableMonths lists the distinct year-months that have expenses for
// the user, sorted ascending.
func (s *ExpenseService) AvailableMonths(userID string) []MonthRef {
	seen := make(map[string]bool)
	for _, e := range s.store.Expenses() {
		if e.UserID != userID || len(e.Date) < 7 {
			continue
		}
		seen[e.Date[:7]] = true
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthRef, 0, len(keys))
	for _, k := range keys {
		t, err := time.Parse("2006-01", k)
		if err != nil {
			continue
		}
		out = append(out, MonthRef{Year: t.Year(), Month: int(t.Month()), YearMonth: k})
	}
	return out
}
