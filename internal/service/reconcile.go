package service

// reconcile.go — the daily report reconciliation engine.
// A pure computation: raw report fields in, canonical totals out. It holds
// no state and touches no storage, so totals can be recomputed from a
// stored report at any time with identical results.

import (
	"github.com/Bezziboi/j-app/internal/dto"

	"github.com/shopspring/decimal"
)

// Fixed daily expenses, in TMT, applied when the dashboard leaves the
// fields empty.
var (
	DefaultEmployeePayout    = decimal.NewFromInt(650)
	DefaultGovernmentExpense = decimal.NewFromInt(200)
)

// ReportInput are the raw fields of a daily report before reconciliation.
type ReportInput struct {
	PosProfit         decimal.Decimal
	EmployeePayout    decimal.Decimal
	GovernmentExpense decimal.Decimal
	ProductExpenses   []dto.ExpenseItemPayload
	OtherExpenses     []dto.ExpenseItemPayload
}

// ReportTotals are the derived figures of a reconciled daily report.
type ReportTotals struct {
	TotalExpenses    decimal.Decimal
	CashInRegister   decimal.Decimal
	RemainingBalance decimal.Decimal
	Excess           decimal.Decimal
}

// Reconcile derives the canonical totals from a report's raw fields.
//
//	total_expenses    = employee_payout + government_expense + Σ product + Σ other
//	cash_in_register  = pos_profit
//	remaining_balance = pos_profit - total_expenses
//	excess            = max(0, cash_in_register - remaining_balance)
//
// The excess formula is kept in its original cash-minus-balance form even
// though it algebraically reduces to max(0, total_expenses); the product
// owners have not clarified which reading is intended.
func Reconcile(in ReportInput) ReportTotals {
	totalExpenses := in.EmployeePayout.
		Add(in.GovernmentExpense).
		Add(sumAmounts(in.ProductExpenses)).
		Add(sumAmounts(in.OtherExpenses))

	cashInRegister := in.PosProfit
	remainingBalance := in.PosProfit.Sub(totalExpenses)

	excess := cashInRegister.Sub(remainingBalance)
	if excess.IsNegative() {
		excess = decimal.Zero
	}

	return ReportTotals{
		TotalExpenses:    totalExpenses,
		CashInRegister:   cashInRegister,
		RemainingBalance: remainingBalance,
		Excess:           excess,
	}
}

func sumAmounts(items []dto.ExpenseItemPayload) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
