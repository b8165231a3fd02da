package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ExpenseItemPayload is one expense line as entered on the dashboard.
// ID is client-generated and only has to be unique within its list.
type ExpenseItemPayload struct {
	ID     string          `json:"id"     validate:"required"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount" validate:"min=0"`
}

// SaveReportRequest carries the raw fields of a daily report. Derived
// totals are recomputed server-side and silently ignored if sent.
// EmployeePayout and GovernmentExpense fall back to the fixed daily
// defaults (650 / 200 TMT) when omitted.
type SaveReportRequest struct {
	Date              string               `json:"date" validate:"required,datetime=2006-01-02"`
	PosProfit         decimal.Decimal      `json:"pos_profit" validate:"min=0"`
	EmployeePayout    *decimal.Decimal     `json:"employee_payout" validate:"omitempty,min=0"`
	GovernmentExpense *decimal.Decimal     `json:"government_expense" validate:"omitempty,min=0"`
	ProductExpenses   []ExpenseItemPayload `json:"product_expenses" validate:"dive"`
	OtherExpenses     []ExpenseItemPayload `json:"other_expenses" validate:"dive"`
}

// UpdateReportRequest is SaveReportRequest without the date — the target
// date comes from the URL path.
type UpdateReportRequest struct {
	PosProfit         decimal.Decimal      `json:"pos_profit" validate:"min=0"`
	EmployeePayout    *decimal.Decimal     `json:"employee_payout" validate:"omitempty,min=0"`
	GovernmentExpense *decimal.Decimal     `json:"government_expense" validate:"omitempty,min=0"`
	ProductExpenses   []ExpenseItemPayload `json:"product_expenses" validate:"dive"`
	OtherExpenses     []ExpenseItemPayload `json:"other_expenses" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ExpenseItemResponse struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

type ReportResponse struct {
	Date              string                `json:"date"`
	PosProfit         decimal.Decimal       `json:"pos_profit"`
	EmployeePayout    decimal.Decimal       `json:"employee_payout"`
	GovernmentExpense decimal.Decimal       `json:"government_expense"`
	ProductExpenses   []ExpenseItemResponse `json:"product_expenses"`
	OtherExpenses     []ExpenseItemResponse `json:"other_expenses"`
	TotalExpenses     decimal.Decimal       `json:"total_expenses"`
	CashInRegister    decimal.Decimal       `json:"cash_in_register"`
	RemainingBalance  decimal.Decimal       `json:"remaining_balance"`
	Excess            decimal.Decimal       `json:"excess"`
	CreatedBy         string                `json:"created_by"`
	CreatedAt         string                `json:"created_at"`
	UpdatedAt         string                `json:"updated_at"`
}
