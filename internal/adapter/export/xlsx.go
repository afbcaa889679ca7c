package export

import (
	"fmt"
	"io"

	"paint_quote/internal/adapter/presenter"
	"paint_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	HistorySheet = "Quotations"

	// excelize built-in number format "0.00"
	numFmtTwoDecimals = 2
	timestampLayout   = "2006-01-02 15:04:05"
)

var historyHeaders = []string{
	"ID", "Date (UTC)", "Full Name", "Email", "Phone", "Area (sq m)", "Coats",
	"Paint Usage", "Paint Category", "Paint Material (" + presenter.Currency + ")",
	"Labour (" + presenter.Currency + ")", "Transport (" + presenter.Currency + ")",
	"Misc & Overhead (" + presenter.Currency + ")", "Overhead %", "Grand Total (" + presenter.Currency + ")",
}

// 1-based column positions within historyHeaders
const (
	firstMoneyCol = 10
	moneyCols     = 4
	grandTotalCol = 15
)

// WriteHistoryXLSX writes one row per quotation to a single-sheet workbook.
func WriteHistoryXLSX(w io.Writer, quotations []entities.Quotation) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(HistorySheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, h := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(HistorySheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(HistorySheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating total style: %w", err)
	}

	for i, q := range quotations {
		row := i + 2
		date := ""
		if !q.Timestamp.IsZero() {
			date = q.Timestamp.UTC().Format(timestampLayout)
		}
		values := []any{
			q.ID,
			date,
			q.FullName,
			q.Email,
			q.Phone,
			q.Area,
			q.Coats,
			q.PaintType,
			q.PaintCategory,
			roundMoney(q.PaintMaterialCost),
			roundMoney(q.LabourCost),
			roundMoney(q.TransportCost),
			roundMoney(q.MiscellaneousCost),
			decimal.NewFromFloat(q.OverheadPercentage).Round(0).IntPart(),
			roundMoney(q.GrandTotal),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(HistorySheet, cell, v); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
		}

		from, _ := excelize.CoordinatesToCellName(firstMoneyCol, row)
		to, _ := excelize.CoordinatesToCellName(firstMoneyCol+moneyCols-1, row)
		if err := f.SetCellStyle(HistorySheet, from, to, moneyStyle); err != nil {
			return fmt.Errorf("styling row %d: %w", row, err)
		}
		total, _ := excelize.CoordinatesToCellName(grandTotalCol, row)
		if err := f.SetCellStyle(HistorySheet, total, total, totalStyle); err != nil {
			return fmt.Errorf("styling row %d: %w", row, err)
		}
	}

	for i := range historyHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := 16.0
		if i == 0 {
			width = 38
		}
		if err := f.SetColWidth(HistorySheet, col, col, width); err != nil {
			return fmt.Errorf("sizing columns: %w", err)
		}
	}

	if f.GetSheetName(0) != HistorySheet {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("removing default sheet: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func roundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
