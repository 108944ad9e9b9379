// Package ledger owns the income, expense, and savings collections and
// enforces the capacity and allocation rules on them.
//
// A Ledger is not safe for concurrent use. Callers hand Snapshot copies
// to anything that runs off the owning goroutine.
package ledger

import (
	"strings"

	"github.com/theirongolddev/walletpal/internal/model"

	"github.com/shopspring/decimal"
)

// Collection caps.
const (
	MaxIncomes  = 5
	MaxExpenses = 10
	MaxSavings  = 5
)

// Ledger holds the three ordered collections.
type Ledger struct {
	incomes  []*model.Income
	expenses []*model.Expense
	savings  []*model.Savings
	policy   SavingsPolicy
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{policy: SavingsConfirm}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy returns the active savings overage policy.
func (l *Ledger) Policy() SavingsPolicy { return l.policy }

// SetPolicy changes the savings overage policy.
func (l *Ledger) SetPolicy(p SavingsPolicy) {
	if p != "" {
		l.policy = p
	}
}

// Incomes returns the incomes in insertion order. The slice is a copy;
// the entries are the live entities.
func (l *Ledger) Incomes() []*model.Income { return append([]*model.Income(nil), l.incomes...) }

// Expenses returns the expenses in insertion order.
func (l *Ledger) Expenses() []*model.Expense { return append([]*model.Expense(nil), l.expenses...) }

// Savings returns the savings goals in insertion order.
func (l *Ledger) Savings() []*model.Savings { return append([]*model.Savings(nil), l.savings...) }

// AddIncome validates and appends a new income.
func (l *Ledger) AddIncome(source, amount, notes string) (*model.Income, error) {
	if len(l.incomes) >= MaxIncomes {
		return nil, &CapacityError{Kind: KindIncome, Max: MaxIncomes}
	}
	amt, err := ParseAmount("amount", amount)
	if err != nil {
		return nil, err
	}
	source, err = RequireLabel("source", source)
	if err != nil {
		return nil, err
	}

	in := model.NewIncome(source, amt, strings.TrimSpace(notes))
	l.incomes = append(l.incomes, in)
	return in, nil
}

// AddExpense validates and appends a new expense. The new limit plus
// everything already allocated must fit within total income.
func (l *Ledger) AddExpense(category, limit, notes string) (*model.Expense, error) {
	if len(l.expenses) >= MaxExpenses {
		return nil, &CapacityError{Kind: KindExpense, Max: MaxExpenses}
	}
	lim, err := ParseAmount("limit", limit)
	if err != nil {
		return nil, err
	}
	category, err = RequireLabel("category", category)
	if err != nil {
		return nil, err
	}
	if err := l.checkAllocation(KindExpense, lim); err != nil {
		return nil, err
	}

	e := model.NewExpense(category, lim, strings.TrimSpace(notes))
	l.expenses = append(l.expenses, e)
	return e, nil
}

// AddSavings validates and appends a new savings goal under the same
// allocation rule as AddExpense.
func (l *Ledger) AddSavings(category, goal, notes string) (*model.Savings, error) {
	if len(l.savings) >= MaxSavings {
		return nil, &CapacityError{Kind: KindSavings, Max: MaxSavings}
	}
	g, err := ParseAmount("goal", goal)
	if err != nil {
		return nil, err
	}
	category, err = RequireLabel("category", category)
	if err != nil {
		return nil, err
	}
	if err := l.checkAllocation(KindSavings, g); err != nil {
		return nil, err
	}

	s := model.NewSavings(category, g, strings.TrimSpace(notes))
	l.savings = append(l.savings, s)
	return s, nil
}

func (l *Ledger) checkAllocation(kind Kind, requested decimal.Decimal) error {
	allocated := l.TotalExpenseLimits().Add(l.TotalSavingsGoals())
	income := l.TotalIncome()
	if allocated.Add(requested).GreaterThan(income) {
		return &AllocationError{Kind: kind, Requested: requested, Allocated: allocated, Income: income}
	}
	return nil
}

// RemoveIncome removes in and reports whether it was present.
// Allocation is not re-checked.
func (l *Ledger) RemoveIncome(in *model.Income) bool {
	for i, cur := range l.incomes {
		if cur.ID() == in.ID() {
			l.incomes = append(l.incomes[:i], l.incomes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveExpense removes e and reports whether it was present.
func (l *Ledger) RemoveExpense(e *model.Expense) bool {
	for i, cur := range l.expenses {
		if cur.ID() == e.ID() {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSavings removes s and reports whether it was present.
func (l *Ledger) RemoveSavings(s *model.Savings) bool {
	for i, cur := range l.savings {
		if cur.ID() == s.ID() {
			l.savings = append(l.savings[:i], l.savings[i+1:]...)
			return true
		}
	}
	return false
}

// TotalIncome sums every income amount.
func (l *Ledger) TotalIncome() decimal.Decimal {
	total := decimal.Zero
	for _, in := range l.incomes {
		total = total.Add(in.Amount())
	}
	return total
}

// TotalExpenseLimits sums every expense limit.
func (l *Ledger) TotalExpenseLimits() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Limit())
	}
	return total
}

// TotalSpent sums spending across all expenses.
func (l *Ledger) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.expenses {
		total = total.Add(e.Spent())
	}
	return total
}

// TotalSavingsGoals sums every savings goal.
func (l *Ledger) TotalSavingsGoals() decimal.Decimal {
	total := decimal.Zero
	for _, s := range l.savings {
		total = total.Add(s.Goal())
	}
	return total
}

// TotalSaved sums the saved amounts across all goals.
func (l *Ledger) TotalSaved() decimal.Decimal {
	total := decimal.Zero
	for _, s := range l.savings {
		total = total.Add(s.Saved())
	}
	return total
}

// Available is the income not yet allocated to limits or goals.
// It goes negative when edits or removals leave the ledger over-allocated.
func (l *Ledger) Available() decimal.Decimal {
	return l.TotalIncome().Sub(l.TotalExpenseLimits()).Sub(l.TotalSavingsGoals())
}

// HasAnyIncome gates the expense, savings, and summary views.
func (l *Ledger) HasAnyIncome() bool { return len(l.incomes) > 0 }

// HasSpendableRoom gates adding expenses and savings goals.
func (l *Ledger) HasSpendableRoom() bool { return l.Available().IsPositive() }

// Empty reports whether the ledger holds nothing at all.
func (l *Ledger) Empty() bool {
	return len(l.incomes) == 0 && len(l.expenses) == 0 && len(l.savings) == 0
}

// AmountPlaces is the precision every stored amount is rounded to.
const AmountPlaces = 2

// ParseAmount parses a non-negative money value from user input, rounded
// half away from zero to AmountPlaces.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Value: raw, Reason: "invalid " + field}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Value: raw, Reason: field + " cannot be negative"}
	}
	return d.Round(AmountPlaces), nil
}

// RequireLabel trims a label and rejects it when empty.
func RequireLabel(field, raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &ValidationError{Field: field, Value: raw, Reason: "please enter a " + field}
	}
	return s, nil
}
