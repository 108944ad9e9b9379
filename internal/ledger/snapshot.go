package ledger

import (
	"fmt"

	"github.com/theirongolddev/walletpal/internal/model"
)

// Snapshot is a detached deep copy of a ledger's collections. It is the
// unit of persistence.
type Snapshot struct {
	Incomes  []*model.Income
	Expenses []*model.Expense
	Savings  []*model.Savings
}

// Warning describes a record that was skipped while loading.
// Line is 0 when the record did not come from a text line.
type Warning struct {
	Line   int
	Text   string
	Reason string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s (%s)", w.Line, w.Reason, w.Text)
	}
	if w.Text != "" {
		return fmt.Sprintf("%s (%s)", w.Reason, w.Text)
	}
	return w.Reason
}

// Len returns the number of records across all collections.
func (s Snapshot) Len() int {
	return len(s.Incomes) + len(s.Expenses) + len(s.Savings)
}

// Clone deep-copies every entity.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Incomes:  make([]*model.Income, 0, len(s.Incomes)),
		Expenses: make([]*model.Expense, 0, len(s.Expenses)),
		Savings:  make([]*model.Savings, 0, len(s.Savings)),
	}
	for _, in := range s.Incomes {
		out.Incomes = append(out.Incomes, in.Clone())
	}
	for _, e := range s.Expenses {
		out.Expenses = append(out.Expenses, e.Clone())
	}
	for _, sv := range s.Savings {
		out.Savings = append(out.Savings, sv.Clone())
	}
	return out
}

// Snapshot returns a deep copy of the ledger's contents.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{Incomes: l.incomes, Expenses: l.expenses, Savings: l.savings}.Clone()
}

// FromSnapshot rebuilds a ledger from persisted data. Spent and saved
// values are restored as-is and the allocation rule is not applied.
// Records past a collection cap are dropped and reported as warnings.
func FromSnapshot(snap Snapshot, opts ...Option) (*Ledger, []Warning) {
	l := New(opts...)
	var warnings []Warning
	c := snap.Clone()

	for _, in := range c.Incomes {
		if len(l.incomes) >= MaxIncomes {
			warnings = append(warnings, capWarning(KindIncome, MaxIncomes, in.Source()))
			continue
		}
		l.incomes = append(l.incomes, in)
	}
	for _, e := range c.Expenses {
		if len(l.expenses) >= MaxExpenses {
			warnings = append(warnings, capWarning(KindExpense, MaxExpenses, e.Category()))
			continue
		}
		l.expenses = append(l.expenses, e)
	}
	for _, s := range c.Savings {
		if len(l.savings) >= MaxSavings {
			warnings = append(warnings, capWarning(KindSavings, MaxSavings, s.Category()))
			continue
		}
		l.savings = append(l.savings, s)
	}
	return l, warnings
}

func capWarning(kind Kind, limit int, label string) Warning {
	return Warning{Text: label, Reason: (&CapacityError{Kind: kind, Max: limit}).Error()}
}
