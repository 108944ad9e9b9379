package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a spending category with a limit. Remaining is always
// limit minus spent and goes negative once the category is overspent.
type Expense struct {
	id        string
	category  string
	limit     decimal.Decimal
	spent     decimal.Decimal
	remaining decimal.Decimal
	notes     string
}

// NewExpense creates an expense with nothing spent yet.
func NewExpense(category string, limit decimal.Decimal, notes string) *Expense {
	return RestoreExpense(uuid.NewString(), category, limit, decimal.Zero, notes)
}

// RestoreExpense rebuilds a persisted expense with its spent amount.
func RestoreExpense(id, category string, limit, spent decimal.Decimal, notes string) *Expense {
	if id == "" {
		id = uuid.NewString()
	}
	e := &Expense{id: id, category: category, limit: limit, spent: spent, notes: notes}
	e.recompute()
	return e
}

func (e *Expense) ID() string                 { return e.id }
func (e *Expense) Category() string           { return e.category }
func (e *Expense) Limit() decimal.Decimal     { return e.limit }
func (e *Expense) Spent() decimal.Decimal     { return e.spent }
func (e *Expense) Remaining() decimal.Decimal { return e.remaining }
func (e *Expense) Notes() string              { return e.notes }

func (e *Expense) SetCategory(category string) { e.category = category }
func (e *Expense) SetNotes(notes string)       { e.notes = notes }

// SetLimit replaces the limit and recomputes remaining.
func (e *Expense) SetLimit(limit decimal.Decimal) {
	e.limit = limit
	e.recompute()
}

// AddSpent adds amount to the spent total.
func (e *Expense) AddSpent(amount decimal.Decimal) {
	e.spent = e.spent.Add(amount)
	e.recompute()
}

// SetSpentDirectly overrides the spent total. Used by loads and edits.
func (e *Expense) SetSpentDirectly(spent decimal.Decimal) {
	e.spent = spent
	e.recompute()
}

// Overspent reports whether more than the limit has been spent.
func (e *Expense) Overspent() bool { return e.remaining.IsNegative() }

// Clone returns an independent copy with the same ID.
func (e *Expense) Clone() *Expense {
	c := *e
	return &c
}

func (e *Expense) recompute() {
	e.remaining = e.limit.Sub(e.spent)
}
