// Package export renders the claims-by-month report as spreadsheet and PDF documents.
package export

import (
	"bytes"
	"fmt"

	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/xuri/excelize/v2"
)

// Content types and download names of the rendered reports
const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDFContentType   = "application/pdf"
	ExcelFileName    = "claims_by_month.xlsx"
	PDFFileName      = "claims_by_month.pdf"
)

// SheetName is the name of the only worksheet of the spreadsheet export
const SheetName = "Claims by Month"

// Headers returns the column titles of the report in currency
func Headers(currency valueobject.Currency) []string {
	return []string{"Month", "Claim Count", fmt.Sprintf("Total Value (%s)", currency)}
}

// ClaimsByMonthExcel renders rows as an xlsx workbook
func ClaimsByMonthExcel(rows []claims.MonthlyClaims, currency valueobject.Currency) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}

	for i, header := range Headers(currency) {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(SheetName, "A1", "C1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	for i, r := range rows {
		line := i + 2
		values := []any{r.Month, r.Count, r.TotalValue.Round(2).InexactFloat64()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, line)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}
	if len(rows) > 0 {
		last := fmt.Sprintf("C%d", len(rows)+1)
		if err := f.SetCellStyle(SheetName, "C2", last, moneyStyle); err != nil {
			return nil, fmt.Errorf("failed to set number style: %w", err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", "C", 20); err != nil {
		return nil, err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
