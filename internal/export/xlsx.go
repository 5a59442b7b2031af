package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fintrack-app/fintrack-backend/internal/entry"
	"github.com/fintrack-app/fintrack-backend/internal/money"
)

// EntriesXLSX renders one owner's entries of a kind as a spreadsheet, most
// recent first, in whatever order the caller passed them.
func EntriesXLSX(kind entry.Kind, entries []entry.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	label := "Source"
	if kind == entry.KindExpense {
		label = "Category"
	}

	headers := []string{label, "Amount", "Date", "Icon"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, e := range entries {
		row := i + 2
		values := []any{
			e.Label,
			money.FormatMinorUnits(e.Amount),
			e.Date.Format("2006-01-02"),
			e.Icon,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
