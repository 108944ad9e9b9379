package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFunded(t *testing.T, income string) *Ledger {
	t.Helper()
	l := New()
	_, err := l.AddIncome("Salary", income, "")
	require.NoError(t, err)
	return l
}

func TestAddIncome_TrimsAndStores(t *testing.T) {
	l := New()
	in, err := l.AddIncome("  Salary  ", " 1000.50 ", "  monthly ")
	require.NoError(t, err)

	assert.Equal(t, "Salary", in.Source())
	assert.True(t, dec("1000.50").Equal(in.Amount()))
	assert.Equal(t, "monthly", in.Notes())
	assert.NotEmpty(t, in.ID())
	assert.True(t, l.HasAnyIncome())
}

func TestAddIncome_CapacityCheckedFirst(t *testing.T) {
	l := New()
	for i := 0; i < MaxIncomes; i++ {
		_, err := l.AddIncome("Job", "100", "")
		require.NoError(t, err)
	}

	// Invalid input still reports capacity, since capacity is checked first.
	_, err := l.AddIncome("", "abc", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, "Income limit reached (5 max)", err.Error())
	assert.Len(t, l.Incomes(), MaxIncomes)
}

func TestAddIncome_Validation(t *testing.T) {
	tests := []struct {
		name   string
		source string
		amount string
		field  string
	}{
		{"non-numeric", "Job", "abc", "amount"},
		{"empty amount", "Job", "", "amount"},
		{"nan", "Job", "NaN", "amount"},
		{"negative", "Job", "-5", "amount"},
		{"blank source", "   ", "100", "source"},
		{"bad amount wins over blank source", "", "x", "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			_, err := l.AddIncome(tt.source, tt.amount, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.False(t, l.HasAnyIncome())
		})
	}
}

func TestAddExpense_AllocationRule(t *testing.T) {
	l := newFunded(t, "1000")

	_, err := l.AddExpense("Rent", "1200", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocation)

	var ae *AllocationError
	require.True(t, errors.As(err, &ae))
	assert.True(t, dec("1200").Equal(ae.Requested))
	assert.True(t, dec("1000").Equal(ae.Income))

	e, err := l.AddExpense("Rent", "800", "")
	require.NoError(t, err)
	assert.True(t, dec("800").Equal(e.Remaining()))
	assert.True(t, e.Spent().IsZero())
}

func TestAddExpense_ExactFitAllowed(t *testing.T) {
	l := newFunded(t, "1000")
	_, err := l.AddExpense("Rent", "600", "")
	require.NoError(t, err)
	_, err = l.AddSavings("Emergency", "400", "")
	require.NoError(t, err)

	assert.True(t, l.Available().IsZero())
	assert.False(t, l.HasSpendableRoom())

	_, err = l.AddExpense("Food", "0.01", "")
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestAddSavings_CountsExpenseLimits(t *testing.T) {
	l := newFunded(t, "1000")
	_, err := l.AddExpense("Rent", "700", "")
	require.NoError(t, err)

	_, err = l.AddSavings("Trip", "400", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot add savings goal")

	s, err := l.AddSavings("Trip", "300", "")
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(s.MoreToGo()))
}

func TestAddExpense_Capacity(t *testing.T) {
	l := newFunded(t, "10000")
	for i := 0; i < MaxExpenses; i++ {
		_, err := l.AddExpense("Cat", "1", "")
		require.NoError(t, err)
	}
	_, err := l.AddExpense("Cat", "1", "")
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, "Expense limit reached (10 max)", err.Error())
}

func TestRemove_DoesNotRecheckAllocation(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Rent", "900", "")
	require.NoError(t, err)

	require.True(t, l.RemoveIncome(l.Incomes()[0]))
	assert.False(t, l.HasAnyIncome())
	assert.Len(t, l.Expenses(), 1)
	assert.True(t, dec("-900").Equal(l.Available()))

	require.True(t, l.RemoveExpense(e))
	assert.False(t, l.RemoveExpense(e))
}

func TestEditExpense_SkipsAllocation(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Rent", "500", "")
	require.NoError(t, err)

	err = l.EditExpense(e.ID(), ExpenseEdit{Category: "Rent", Limit: "100000", Spent: "0"})
	require.NoError(t, err)
	assert.True(t, dec("100000").Equal(e.Limit()))
	assert.True(t, dec("100000").Equal(e.Remaining()))
}

func TestEditExpense_AllOrNothing(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Rent", "500", "old")
	require.NoError(t, err)

	err = l.EditExpense(e.ID(), ExpenseEdit{Category: "Housing", Limit: "600", Spent: "oops", Notes: "new"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, "Rent", e.Category())
	assert.True(t, dec("500").Equal(e.Limit()))
	assert.Equal(t, "old", e.Notes())
}

func TestEditIncome_AllOrNothing(t *testing.T) {
	l := New()
	in, err := l.AddIncome("Salary", "1000", "old")
	require.NoError(t, err)

	err = l.EditIncome(in.ID(), IncomeEdit{Source: "Wages", Amount: "lots", Notes: "new"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, "Salary", in.Source())
	assert.True(t, dec("1000").Equal(in.Amount()))
	assert.Equal(t, "old", in.Notes())
}

func TestEditSavings_AllOrNothing(t *testing.T) {
	l := newFunded(t, "1000")
	s, err := l.AddSavings("Trip", "300", "old")
	require.NoError(t, err)
	s.AddSaved(dec("50"))

	err = l.EditSavings(s.ID(), SavingsEdit{Category: "Holiday", Goal: "400", Saved: "-1", Notes: "new"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, "Trip", s.Category())
	assert.True(t, dec("300").Equal(s.Goal()))
	assert.True(t, dec("50").Equal(s.Saved()))
	assert.True(t, dec("250").Equal(s.MoreToGo()))
	assert.Equal(t, "old", s.Notes())
}

func TestParseAmount_RoundsToCents(t *testing.T) {
	cases := map[string]string{
		"10.125":  "10.13",
		"10.124":  "10.12",
		" 0.005 ": "0.01",
		"7":       "7",
	}
	for raw, want := range cases {
		got, err := ParseAmount("amount", raw)
		require.NoError(t, err, raw)
		assert.True(t, dec(want).Equal(got), "%s -> %s, want %s", raw, got, want)
	}
}

func TestEditExpense_RoundsOverride(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Rent", "500.999", "")
	require.NoError(t, err)
	assert.True(t, dec("501").Equal(e.Limit()))

	require.NoError(t, l.EditExpense(e.ID(), ExpenseEdit{Category: "Rent", Limit: "501", Spent: "0.333"}))
	assert.True(t, dec("0.33").Equal(e.Spent()))
}

func TestEditExpense_SpentOverride(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Rent", "500", "")
	require.NoError(t, err)

	require.NoError(t, l.EditExpense(e.ID(), ExpenseEdit{Category: "Rent", Limit: "500", Spent: "650"}))
	assert.True(t, dec("-150").Equal(e.Remaining()))
	assert.True(t, e.Overspent())
}

func TestEditSavings_RejectsBlankCategory(t *testing.T) {
	l := newFunded(t, "1000")
	s, err := l.AddSavings("Trip", "300", "")
	require.NoError(t, err)

	err = l.EditSavings(s.ID(), SavingsEdit{Category: " ", Goal: "300", Saved: "0"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Trip", s.Category())
}

func TestEdit_UnknownEntity(t *testing.T) {
	l := New()
	err := l.EditIncome("nope", IncomeEdit{Source: "x", Amount: "1"})
	assert.ErrorIs(t, err, ErrUnknownEntity)
}

func TestFindAndLabels(t *testing.T) {
	l := newFunded(t, "1000")
	_, err := l.AddExpense("Groceries", "200", "")
	require.NoError(t, err)

	e, ok := l.FindExpense("  groceries ")
	require.True(t, ok)
	assert.Equal(t, "Groceries", e.Category())

	_, ok = l.FindExpense("rent")
	assert.False(t, ok)

	assert.Equal(t, []string{"Salary"}, l.Labels(KindIncome))
	assert.Equal(t, []string{"Groceries"}, l.Labels(KindExpense))
	assert.Empty(t, l.Labels(KindSavings))
}

func TestSnapshot_IsDetached(t *testing.T) {
	l := newFunded(t, "1000")
	e, err := l.AddExpense("Rent", "500", "")
	require.NoError(t, err)

	snap := l.Snapshot()
	e.AddSpent(dec("100"))

	assert.True(t, snap.Expenses[0].Spent().IsZero())
	assert.Equal(t, e.ID(), snap.Expenses[0].ID())
	assert.Equal(t, 2, snap.Len())
}

func TestFromSnapshot_CapsAndNoAllocation(t *testing.T) {
	src := New()
	for i := 0; i < MaxIncomes; i++ {
		_, err := src.AddIncome("Job", "1", "")
		require.NoError(t, err)
	}
	snap := src.Snapshot()
	extra := snap.Incomes[0].Clone()
	snap.Incomes = append(snap.Incomes, extra)

	big := New()
	_, err := big.AddIncome("x", "100000", "")
	require.NoError(t, err)
	_, err = big.AddExpense("Huge", "90000", "")
	require.NoError(t, err)
	snap.Expenses = big.Snapshot().Expenses

	l, warnings := FromSnapshot(snap, WithSavingsPolicy(SavingsReject))
	assert.Len(t, l.Incomes(), MaxIncomes)
	assert.Len(t, l.Expenses(), 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Reason, "Income limit reached")
	assert.Equal(t, SavingsReject, l.Policy())
	assert.True(t, l.Available().IsNegative())
}

func TestParseSavingsPolicy(t *testing.T) {
	p, err := ParseSavingsPolicy("")
	require.NoError(t, err)
	assert.Equal(t, SavingsConfirm, p)

	p, err = ParseSavingsPolicy(" Reject ")
	require.NoError(t, err)
	assert.Equal(t, SavingsReject, p)

	_, err = ParseSavingsPolicy("maybe")
	assert.Error(t, err)
}
