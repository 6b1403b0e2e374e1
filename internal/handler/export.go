package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/LSkevi/PieTracker/internal/middleware"
	"github.com/LSkevi/PieTracker/internal/service"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams a user's expenses as CSV or XLSX.
type ExportHandler struct {
	Expenses *service.ExpenseService
}

func NewExportHandler(es *service.ExpenseService) *ExportHandler {
	return &ExportHandler{Expenses: es}
}

var exportHeader = []string{"Date", "Category", "Description", "Amount", "Currency"}

func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses := h.Expenses.List(middleware.UserID(c))

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, e := range expenses {
		writer.Write([]string{
			e.Date,
			e.Category,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Currency,
		})
	}
}

func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	expenses := h.Expenses.List(middleware.UserID(c))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	f.SetSheetName("Sheet1", sheet)

	for i, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, e := range expenses {
		values := []interface{}{e.Date, e.Category, e.Description, e.Amount, e.Currency}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not write workbook")
	}
}
