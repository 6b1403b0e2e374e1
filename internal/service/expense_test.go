package service

import (
	"testing"

	"github.com/LSkevi/PieTracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseCreate_StampsFields(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	e, err := svc.Create("u1", CreateExpenseInput{
		Amount:      12.34,
		Category:    "Food",
		Description: "lunch",
		Date:        "2025-08-29",
		Currency:    "usd",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.NotEmpty(t, e.CreatedAt)
	assert.Equal(t, "u1", e.UserID)
	assert.Equal(t, "USD", e.Currency, "currency codes are normalized to upper case")
	assert.Equal(t, 12.34, e.Amount)
}

func TestExpenseCreate_UnknownCurrencyFallsBack(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	e, err := svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food", Date: "2025-08-29", Currency: "ZZZ"})
	require.NoError(t, err)
	assert.Equal(t, "CAD", e.Currency)

	e, err = svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food", Date: "2025-08-29"})
	require.NoError(t, err)
	assert.Equal(t, "CAD", e.Currency)
}

func TestExpenseCreate_DefaultsDateToToday(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	e, err := svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food"})
	require.NoError(t, err)
	assert.Len(t, e.Date, 10)
}

func TestExpenseCreate_Validation(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	_, err := svc.Create("u1", CreateExpenseInput{Amount: 0, Category: "Food", Date: "2025-08-29"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create("u1", CreateExpenseInput{Amount: -5, Category: "Food", Date: "2025-08-29"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create("u1", CreateExpenseInput{Amount: 5, Category: "", Date: "2025-08-29"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = svc.Create("u1", CreateExpenseInput{Amount: 5, Category: "Food", Date: "29/08/2025"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestExpenseList_ScopedToUser(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	_, err := svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food", Date: "2025-08-29"})
	require.NoError(t, err)
	_, err = svc.Create("u2", CreateExpenseInput{Amount: 2, Category: "Food", Date: "2025-08-29"})
	require.NoError(t, err)

	// a pre-migration legacy row with no owner
	require.NoError(t, st.AppendExpense(models.Expense{ID: "legacy", Amount: 3, Category: "Food", Date: "2025-08-29"}))

	list := svc.List("u1")
	require.Len(t, list, 1)
	assert.Equal(t, 1.0, list[0].Amount)

	// legacy rows stay on disk but never match a user
	assert.Len(t, st.Expenses(), 3)
}

func TestExpenseListMonth(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	for _, d := range []string{"2025-07-31", "2025-08-01", "2025-08-29", "2025-09-01"} {
		_, err := svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food", Date: d})
		require.NoError(t, err)
	}

	list := svc.ListMonth("u1", 2025, 8)
	assert.Len(t, list, 2)

	assert.Empty(t, svc.ListMonth("u1", 2024, 8))
}

func TestExpenseDelete_CrossUserIsNoop(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	e, err := svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food", Date: "2025-08-29"})
	require.NoError(t, err)

	removed, err := svc.Delete("u2", e.ID)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, svc.List("u1"), 1, "other users' deletes must not remove the record")

	removed, err = svc.Delete("u1", e.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, svc.List("u1"))
}

func TestExpenseDelete_UnknownIDIsNoop(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	removed, err := svc.Delete("u1", "missing")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMonthlySummary(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	_, err := svc.Create("u1", CreateExpenseInput{Amount: 10, Category: "Food", Date: "2025-08-01"})
	require.NoError(t, err)
	_, err = svc.Create("u1", CreateExpenseInput{Amount: 5, Category: "Food", Date: "2025-08-15"})
	require.NoError(t, err)
	_, err = svc.Create("u1", CreateExpenseInput{Amount: 7, Category: "Shopping", Date: "2025-08-20"})
	require.NoError(t, err)
	_, err = svc.Create("u2", CreateExpenseInput{Amount: 100, Category: "Food", Date: "2025-08-20"})
	require.NoError(t, err)

	sum := svc.MonthlySummary("u1", 2025, 8)

	assert.Equal(t, "2025-08", sum.Month)
	assert.Equal(t, 22.0, sum.Total)
	assert.Equal(t, 3, sum.ExpenseCount)
	assert.Equal(t, map[string]float64{"Food": 15, "Shopping": 7}, sum.Categories)
}

func TestMonthlySummary_EmptyMonth(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	sum := svc.MonthlySummary("u1", 2025, 1)
	assert.Equal(t, 0.0, sum.Total)
	assert.Equal(t, 0, sum.ExpenseCount)
	assert.Empty(t, sum.Categories)
}

func TestAvailableMonths(t *testing.T) {
	st := newTestStore(t)
	svc := NewExpenseService(st)

	for _, d := range []string{"2025-08-29", "2025-08-01", "2024-12-25", "2025-01-05"} {
		_, err := svc.Create("u1", CreateExpenseInput{Amount: 1, Category: "Food", Date: d})
		require.NoError(t, err)
	}
	_, err := svc.Create("u2", CreateExpenseInput{Amount: 1, Category: "Food", Date: "2023-03-03"})
	require.NoError(t, err)

	months := svc.AvailableMonths("u1")

	require.Len(t, months, 3)
	assert.Equal(t, MonthRef{Year: 2024, Month: 12, YearMonth: "2024-12"}, months[0])
	assert.Equal(t, MonthRef{Year: 2025, Month: 1, YearMonth: "2025-01"}, months[1])
	assert.Equal(t, MonthRef{Year: 2025, Month: 8, YearMonth: "2025-08"}, months[2])
}
