package reports

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"

	"github.com/fintrack-app/fintrack-backend/internal/money"
)

func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	userID, err := extractUserID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	from, to, err := periodBounds(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	stmt, err := h.buildStatement(userContext(c), userID, from, to)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build statement: "+err.Error())
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "FinTrack Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+stmt.From+" to "+stmt.To)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(20, 20, 20)
	pdf.CellFormat(28, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(24, 7, "Type", "B", 0, "L", false, 0, "")
	pdf.CellFormat(96, 7, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(34, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range stmt.Items {
		pdf.CellFormat(28, 7, it.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(24, 7, titleCase(it.Type), "", 0, "L", false, 0, "")
		pdf.CellFormat(96, 7, it.Title, "", 0, "L", false, 0, "")
		pdf.CellFormat(34, 7, money.FormatMinorUnits(it.Amount), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(148, 7, "Total income", "T", 0, "L", false, 0, "")
	pdf.CellFormat(34, 7, money.FormatMinorUnits(stmt.TotalIncome), "T", 1, "R", false, 0, "")
	pdf.CellFormat(148, 7, "Total expense", "", 0, "L", false, 0, "")
	pdf.CellFormat(34, 7, money.FormatMinorUnits(stmt.TotalExpense), "", 1, "R", false, 0, "")
	pdf.CellFormat(148, 7, "Balance", "", 0, "L", false, 0, "")
	pdf.CellFormat(34, 7, money.FormatMinorUnits(stmt.Balance), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render pdf")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="statement_`+stmt.From+`_`+stmt.To+`.pdf"`)
	return c.Send(buf.Bytes())
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
