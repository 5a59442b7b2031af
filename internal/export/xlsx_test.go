package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fintrack-app/fintrack-backend/internal/entry"
)

func TestEntriesXLSX(t *testing.T) {
	entries := []entry.Entry{
		{
			ID:     "e1",
			Kind:   entry.KindExpense,
			Label:  "Groceries",
			Amount: 1234,
			Date:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			Icon:   "cart",
		},
		{
			ID:     "e2",
			Kind:   entry.KindExpense,
			Label:  "Rent",
			Amount: 120000,
			Date:   time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	buf, err := EntriesXLSX(entry.KindExpense, entries)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Category", header)

	label, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Groceries", label)

	amount, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "12.34", amount)

	date, err := f.GetCellValue(sheet, "C3")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-28", date)
}

func TestEntriesXLSXIncomeHeader(t *testing.T) {
	buf, err := EntriesXLSX(entry.KindIncome, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(f.GetSheetName(0), "A1")
	require.NoError(t, err)
	assert.Equal(t, "Source", header)
}
