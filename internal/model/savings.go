package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Savings is a savings goal. MoreToGo is goal minus saved and goes
// negative once the goal is exceeded.
type Savings struct {
	id       string
	category string
	goal     decimal.Decimal
	saved    decimal.Decimal
	moreToGo decimal.Decimal
	notes    string
}

// NewSavings creates a savings goal with nothing saved yet.
func NewSavings(category string, goal decimal.Decimal, notes string) *Savings {
	return RestoreSavings(uuid.NewString(), category, goal, decimal.Zero, notes)
}

// RestoreSavings rebuilds a persisted savings goal with its saved amount.
func RestoreSavings(id, category string, goal, saved decimal.Decimal, notes string) *Savings {
	if id == "" {
		id = uuid.NewString()
	}
	s := &Savings{id: id, category: category, goal: goal, saved: saved, notes: notes}
	s.recompute()
	return s
}

func (s *Savings) ID() string                { return s.id }
func (s *Savings) Category() string          { return s.category }
func (s *Savings) Goal() decimal.Decimal     { return s.goal }
func (s *Savings) Saved() decimal.Decimal    { return s.saved }
func (s *Savings) MoreToGo() decimal.Decimal { return s.moreToGo }
func (s *Savings) Notes() string             { return s.notes }

func (s *Savings) SetCategory(category string) { s.category = category }
func (s *Savings) SetNotes(notes string)       { s.notes = notes }

// SetGoal replaces the goal and recomputes more-to-go.
func (s *Savings) SetGoal(goal decimal.Decimal) {
	s.goal = goal
	s.recompute()
}

// AddSaved adds amount to the saved total.
func (s *Savings) AddSaved(amount decimal.Decimal) {
	s.saved = s.saved.Add(amount)
	s.recompute()
}

// SetSavedDirectly overrides the saved total. Used by loads and edits.
func (s *Savings) SetSavedDirectly(saved decimal.Decimal) {
	s.saved = saved
	s.recompute()
}

// Reached reports whether the goal has been met.
func (s *Savings) Reached() bool { return !s.moreToGo.IsPositive() }

// Clone returns an independent copy with the same ID.
func (s *Savings) Clone() *Savings {
	c := *s
	return &c
}

func (s *Savings) recompute() {
	s.moreToGo = s.goal.Sub(s.saved)
}
