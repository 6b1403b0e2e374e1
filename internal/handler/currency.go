package handler

import (
	"github.com/LSkevi/PieTracker/internal/currency"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/gin-gonic/gin"
)

// CurrencyHandler serves the supported-currency list and the cached
// exchange-rate table.
type CurrencyHandler struct {
	Rates *currency.Cache
}

func NewCurrencyHandler(cache *currency.Cache) *CurrencyHandler {
	return &CurrencyHandler{Rates: cache}
}

func (h *CurrencyHandler) Supported(c *gin.Context) {
	util.Success(c, currency.Supported())
}

func (h *CurrencyHandler) RatesTable(c *gin.Context) {
	util.Success(c, gin.H{
		"base":  currency.BaseCode,
		"rates": h.Rates.Rates(c.Request.Context()),
	})
}
