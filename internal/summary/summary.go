// Package summary derives the aggregate budget view from a ledger.
package summary

import (
	"github.com/theirongolddev/walletpal/internal/ledger"
	"github.com/theirongolddev/walletpal/internal/model"

	"github.com/shopspring/decimal"
)

// Chart series labels, in stacking order.
const (
	SeriesIncome           = "Income"
	SeriesExpenseSpent     = "Expense - Spent"
	SeriesExpenseRemaining = "Expense - Remaining"
	SeriesSavingsSaved     = "Savings - Saved"
	SeriesSavingsRemaining = "Savings - Remaining"
)

var hundred = decimal.NewFromInt(100)

// Compute aggregates l into a Summary. It does not modify l.
func Compute(l *ledger.Ledger) model.Summary {
	income := l.TotalIncome()
	limits := l.TotalExpenseLimits()
	spent := l.TotalSpent()
	goals := l.TotalSavingsGoals()
	saved := l.TotalSaved()

	s := model.Summary{
		TotalIncome:        income,
		TotalExpenseLimits: limits,
		TotalSpent:         spent,
		TotalSavingsGoals:  goals,
		TotalSaved:         saved,
		NetBalance:         income.Sub(spent),
		RemainingBudget:    income.Sub(limits).Sub(goals),
		BudgetUtilization:  percent(limits.Add(goals), income),
		SavingsProgress:    percent(saved, goals),
	}

	s.Series = []model.Segment{
		{Label: SeriesIncome, Value: income},
		{Label: SeriesExpenseSpent, Value: spent},
		{Label: SeriesExpenseRemaining, Value: clampZero(limits.Sub(spent))},
		{Label: SeriesSavingsSaved, Value: saved},
		{Label: SeriesSavingsRemaining, Value: clampZero(goals.Sub(saved))},
	}
	return s
}

// percent returns part/whole*100, or 0 when whole is not positive.
func percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Mul(hundred).Float64()
	return f
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
