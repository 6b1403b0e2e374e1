package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LSkevi/PieTracker/internal/middleware"
	"github.com/LSkevi/PieTracker/internal/service"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler exposes per-user expense CRUD and aggregation.
type ExpenseHandler struct {
	Expenses *service.ExpenseService
}

func NewExpenseHandler(es *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Expenses: es}
}

func monthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1970 || year > 9999 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid month")
		return 0, 0, false
	}
	return year, month, true
}

func (h *ExpenseHandler) List(c *gin.Context) {
	util.Success(c, h.Expenses.List(middleware.UserID(c)))
}

func (h *ExpenseHandler) ListMonth(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	util.Success(c, h.Expenses.ListMonth(middleware.UserID(c), year, month))
}

func (h *ExpenseHandler) Summary(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}
	util.Success(c, h.Expenses.MonthlySummary(middleware.UserID(c), year, month))
}

func (h *ExpenseHandler) AvailableMonths(c *gin.Context) {
	util.Success(c, h.Expenses.AvailableMonths(middleware.UserID(c)))
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req service.CreateExpenseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	expense, err := h.Expenses.Create(middleware.UserID(c), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalid) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save expense")
		return
	}
	util.Success(c, expense)
}

// Delete always answers 200 with the generic message. Whether the id
// belonged to another user (no-op) or was removed is not disclosed.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	if _, err := h.Expenses.Delete(middleware.UserID(c), c.Param("id")); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete expense")
		return
	}
	util.Success(c, gin.H{"message": "Expense deleted successfully"})
}
