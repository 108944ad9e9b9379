package summary

import (
	"math"
	"testing"

	"github.com/theirongolddev/walletpal/internal/ledger"

	"github.com/shopspring/decimal"
)

func mustLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	if _, err := l.AddIncome("Salary", "1000", ""); err != nil {
		t.Fatal(err)
	}
	e, err := l.AddExpense("Food", "200", "")
	if err != nil {
		t.Fatal(err)
	}
	e.AddSpent(decimal.NewFromInt(150))
	s, err := l.AddSavings("Trip", "300", "")
	if err != nil {
		t.Fatal(err)
	}
	s.AddSaved(decimal.NewFromInt(100))
	return l
}

func TestCompute(t *testing.T) {
	s := Compute(mustLedger(t))

	if !s.NetBalance.Equal(decimal.NewFromInt(850)) {
		t.Errorf("NetBalance = %s, want 850", s.NetBalance)
	}
	if !s.RemainingBudget.Equal(decimal.NewFromInt(500)) {
		t.Errorf("RemainingBudget = %s, want 500", s.RemainingBudget)
	}
	if math.Abs(s.BudgetUtilization-50.0) > 1e-9 {
		t.Errorf("BudgetUtilization = %.4f, want 50.0", s.BudgetUtilization)
	}
	if math.Abs(s.SavingsProgress-33.333) > 0.01 {
		t.Errorf("SavingsProgress = %.4f, want ~33.3", s.SavingsProgress)
	}
	if s.Overspent() {
		t.Error("Overspent() = true, want false")
	}
}

func TestCompute_Series(t *testing.T) {
	s := Compute(mustLedger(t))

	want := []struct {
		label string
		value int64
	}{
		{SeriesIncome, 1000},
		{SeriesExpenseSpent, 150},
		{SeriesExpenseRemaining, 50},
		{SeriesSavingsSaved, 100},
		{SeriesSavingsRemaining, 200},
	}
	if len(s.Series) != len(want) {
		t.Fatalf("len(Series) = %d, want %d", len(s.Series), len(want))
	}
	for i, w := range want {
		got := s.Series[i]
		if got.Label != w.label || !got.Value.Equal(decimal.NewFromInt(w.value)) {
			t.Errorf("Series[%d] = {%s %s}, want {%s %d}", i, got.Label, got.Value, w.label, w.value)
		}
	}
}

func TestCompute_ClampsOverspend(t *testing.T) {
	l := ledger.New()
	if _, err := l.AddIncome("Salary", "100", ""); err != nil {
		t.Fatal(err)
	}
	e, err := l.AddExpense("Food", "50", "")
	if err != nil {
		t.Fatal(err)
	}
	e.AddSpent(decimal.NewFromInt(180))

	s := Compute(l)
	if !s.Series[2].Value.IsZero() {
		t.Errorf("Expense - Remaining = %s, want 0", s.Series[2].Value)
	}
	if !s.NetBalance.Equal(decimal.NewFromInt(-80)) {
		t.Errorf("NetBalance = %s, want -80", s.NetBalance)
	}
	if !s.Overspent() {
		t.Error("Overspent() = false, want true")
	}
}

func TestCompute_EmptyLedger(t *testing.T) {
	s := Compute(ledger.New())
	if s.BudgetUtilization != 0 || s.SavingsProgress != 0 {
		t.Errorf("percentages = %.2f/%.2f, want 0/0", s.BudgetUtilization, s.SavingsProgress)
	}
	if !s.SeriesTotal().IsZero() {
		t.Errorf("SeriesTotal = %s, want 0", s.SeriesTotal())
	}
}
