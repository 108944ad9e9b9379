package ledger

import (
	"strings"

	"github.com/theirongolddev/walletpal/internal/model"
)

// IncomeByID returns the income with the given ID.
func (l *Ledger) IncomeByID(id string) (*model.Income, bool) {
	for _, in := range l.incomes {
		if in.ID() == id {
			return in, true
		}
	}
	return nil, false
}

// ExpenseByID returns the expense with the given ID.
func (l *Ledger) ExpenseByID(id string) (*model.Expense, bool) {
	for _, e := range l.expenses {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

// SavingsByID returns the savings goal with the given ID.
func (l *Ledger) SavingsByID(id string) (*model.Savings, bool) {
	for _, s := range l.savings {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// FindIncome returns the first income whose source matches label,
// ignoring case and surrounding space.
func (l *Ledger) FindIncome(label string) (*model.Income, bool) {
	for _, in := range l.incomes {
		if sameLabel(in.Source(), label) {
			return in, true
		}
	}
	return nil, false
}

// FindExpense returns the first expense whose category matches label.
func (l *Ledger) FindExpense(label string) (*model.Expense, bool) {
	for _, e := range l.expenses {
		if sameLabel(e.Category(), label) {
			return e, true
		}
	}
	return nil, false
}

// FindSavings returns the first savings goal whose category matches label.
func (l *Ledger) FindSavings(label string) (*model.Savings, bool) {
	for _, s := range l.savings {
		if sameLabel(s.Category(), label) {
			return s, true
		}
	}
	return nil, false
}

// Labels returns the display labels of one collection, in order.
func (l *Ledger) Labels(kind Kind) []string {
	var out []string
	switch kind {
	case KindIncome:
		for _, in := range l.incomes {
			out = append(out, in.Source())
		}
	case KindExpense:
		for _, e := range l.expenses {
			out = append(out, e.Category())
		}
	case KindSavings:
		for _, s := range l.savings {
			out = append(out, s.Category())
		}
	}
	return out
}

func sameLabel(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
