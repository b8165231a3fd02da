package infra

// pdf.go — daily report sheet generation using go-pdf/fpdf.
// Renders an A4 page with the POS figure, the fixed expenses, both
// expense-item tables and the reconciled totals, all in TMT.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Bezziboi/j-app/internal/dto"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

func tmt(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " TMT"
}

// GenerateReportPDF writes the report sheet for one day to
// storagePath/report_{date}.pdf (directory created if needed) and returns
// the absolute path of the generated file.
func GenerateReportPDF(report *dto.ReportResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("report_%s.pdf", report.Date))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Jadygoy Cafe", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Daily Expense Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Date: "+report.Date, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Entered by: "+report.CreatedBy, "", 1, "L", false, 0, "")
	pdf.Ln(3)

	labelW := contentW * 0.65
	valueW := contentW * 0.35

	row := func(label, value string) {
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}

	// ── Fixed figures ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	row("POS profit", tmt(report.PosProfit))
	row("Employee salary", tmt(report.EmployeePayout))
	row("Government expenses", tmt(report.GovernmentExpense))
	pdf.Ln(2)

	itemTable := func(title string, items []dto.ExpenseItemResponse) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW, 6, title, "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		if len(items) == 0 {
			pdf.CellFormat(contentW, 5, "none", "", 1, "L", false, 0, "")
		}
		for _, item := range items {
			title := item.Title
			if len(title) > 60 {
				title = title[:59] + "…"
			}
			pdf.CellFormat(labelW, 5, title, "", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, 5, tmt(item.Amount), "", 1, "R", false, 0, "")
		}
		pdf.Ln(2)
	}

	itemTable("Product expenses", report.ProductExpenses)
	itemTable("Other expenses", report.OtherExpenses)

	// ── Reconciled totals ─────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	row("Total expenses", tmt(report.TotalExpenses))
	row("Cash in register", tmt(report.CashInRegister))
	row("Remaining balance", tmt(report.RemainingBalance))
	row("Excess", tmt(report.Excess))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
