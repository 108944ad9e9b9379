package model

import "github.com/shopspring/decimal"

// Summary holds the aggregate view over a ledger.
type Summary struct {
	TotalIncome        decimal.Decimal
	TotalExpenseLimits decimal.Decimal
	TotalSpent         decimal.Decimal
	TotalSavingsGoals  decimal.Decimal
	TotalSaved         decimal.Decimal

	NetBalance      decimal.Decimal // income - spent
	RemainingBudget decimal.Decimal // income - limits - goals

	BudgetUtilization float64 // percent of income allocated, 0 when no income
	SavingsProgress   float64 // percent of goals saved, 0 when no goals

	Series []Segment
}

// Segment is one slice of the stacked breakdown chart.
type Segment struct {
	Label string
	Value decimal.Decimal
}

// Overspent reports whether more has been spent than earned.
func (s Summary) Overspent() bool { return s.NetBalance.IsNegative() }

// UtilizationRatio returns utilization as a 0-1 fraction, uncapped.
func (s Summary) UtilizationRatio() float64 { return s.BudgetUtilization / 100 }

// ProgressRatio returns savings progress as a 0-1 fraction, uncapped.
func (s Summary) ProgressRatio() float64 { return s.SavingsProgress / 100 }

// SeriesTotal sums every chart segment.
func (s Summary) SeriesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, seg := range s.Series {
		total = total.Add(seg.Value)
	}
	return total
}
