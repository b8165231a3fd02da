package service

import (
	"testing"

	"github.com/Bezziboi/j-app/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func items(amounts ...string) []dto.ExpenseItemPayload {
	out := make([]dto.ExpenseItemPayload, len(amounts))
	for i, a := range amounts {
		out[i] = dto.ExpenseItemPayload{ID: a, Title: "item", Amount: dec(a)}
	}
	return out
}

func assertDec(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestReconcile_ProfitableDay(t *testing.T) {
	totals := Reconcile(ReportInput{
		PosProfit:         dec("1000"),
		EmployeePayout:    dec("650"),
		GovernmentExpense: dec("200"),
		ProductExpenses:   items("50"),
	})

	assertDec(t, "900", totals.TotalExpenses)
	assertDec(t, "1000", totals.CashInRegister)
	assertDec(t, "100", totals.RemainingBalance)
	assertDec(t, "900", totals.Excess)
}

func TestReconcile_NegativeBalance(t *testing.T) {
	totals := Reconcile(ReportInput{
		PosProfit:         dec("500"),
		EmployeePayout:    dec("650"),
		GovernmentExpense: dec("200"),
	})

	assertDec(t, "850", totals.TotalExpenses)
	assertDec(t, "-350", totals.RemainingBalance)
	assertDec(t, "850", totals.Excess)
}

func TestReconcile_TotalExpensesSum(t *testing.T) {
	cases := []struct {
		name     string
		payout   string
		gov      string
		product  []string
		other    []string
		expected string
	}{
		{"no items", "650", "200", nil, nil, "850"},
		{"product only", "650", "200", []string{"10.50", "4.25"}, nil, "864.75"},
		{"both lists", "650", "200", []string{"100"}, []string{"20", "30"}, "1000"},
		{"zero fixed", "0", "0", []string{"12.34"}, []string{"0.66"}, "13"},
		{"zero amounts", "650", "200", []string{"0", "0"}, []string{"0"}, "850"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := Reconcile(ReportInput{
				EmployeePayout:    dec(tc.payout),
				GovernmentExpense: dec(tc.gov),
				ProductExpenses:   items(tc.product...),
				OtherExpenses:     items(tc.other...),
			})
			assertDec(t, tc.expected, totals.TotalExpenses)
		})
	}
}

// The stored excess formula (cash minus balance, floored at zero) must
// agree with its algebraic simplification max(0, total_expenses).
func TestReconcile_ExcessFormulationsAgree(t *testing.T) {
	inputs := []ReportInput{
		{PosProfit: dec("1000"), EmployeePayout: dec("650"), GovernmentExpense: dec("200"), ProductExpenses: items("50")},
		{PosProfit: dec("500"), EmployeePayout: dec("650"), GovernmentExpense: dec("200")},
		{PosProfit: dec("0"), EmployeePayout: dec("0"), GovernmentExpense: dec("0")},
		{PosProfit: dec("-100"), EmployeePayout: dec("650"), GovernmentExpense: dec("200"), OtherExpenses: items("99.99")},
	}
	for _, in := range inputs {
		totals := Reconcile(in)

		simplified := totals.TotalExpenses
		if simplified.IsNegative() {
			simplified = decimal.Zero
		}
		assert.True(t, totals.Excess.Equal(simplified),
			"excess %s disagrees with max(0, total_expenses) %s", totals.Excess, simplified)
		assert.True(t, totals.RemainingBalance.Equal(in.PosProfit.Sub(totals.TotalExpenses)))
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	in := ReportInput{
		PosProfit:         dec("1234.56"),
		EmployeePayout:    dec("650"),
		GovernmentExpense: dec("200"),
		ProductExpenses:   items("10", "20", "30"),
		OtherExpenses:     items("5.55"),
	}

	first := Reconcile(in)
	second := Reconcile(in)

	assert.True(t, first.TotalExpenses.Equal(second.TotalExpenses))
	assert.True(t, first.CashInRegister.Equal(second.CashInRegister))
	assert.True(t, first.RemainingBalance.Equal(second.RemainingBalance))
	assert.True(t, first.Excess.Equal(second.Excess))
}

func TestReconcile_ItemOrderIrrelevant(t *testing.T) {
	forward := Reconcile(ReportInput{ProductExpenses: items("1.10", "2.20", "3.30")})
	reversed := Reconcile(ReportInput{ProductExpenses: items("3.30", "2.20", "1.10")})
	assert.True(t, forward.TotalExpenses.Equal(reversed.TotalExpenses))
}
