package ledger

import "strings"

// IncomeEdit carries the full replacement values for an income, as
// entered by the user.
type IncomeEdit struct {
	Source string
	Amount string
	Notes  string
}

// ExpenseEdit carries replacement values for an expense. Spent overrides
// the accumulated spending directly.
type ExpenseEdit struct {
	Category string
	Limit    string
	Spent    string
	Notes    string
}

// SavingsEdit carries replacement values for a savings goal.
type SavingsEdit struct {
	Category string
	Goal     string
	Saved    string
	Notes    string
}

// EditIncome applies edit to the income with the given ID. Every field
// is validated before any is applied, so a rejected edit leaves the
// income untouched. The allocation rule is not re-checked.
func (l *Ledger) EditIncome(id string, edit IncomeEdit) error {
	in, ok := l.IncomeByID(id)
	if !ok {
		return ErrUnknownEntity
	}
	amount, err := ParseAmount("amount", edit.Amount)
	if err != nil {
		return err
	}
	source, err := RequireLabel("source", edit.Source)
	if err != nil {
		return err
	}

	in.SetSource(source)
	in.SetAmount(amount)
	in.SetNotes(strings.TrimSpace(edit.Notes))
	return nil
}

// EditExpense applies edit to the expense with the given ID.
func (l *Ledger) EditExpense(id string, edit ExpenseEdit) error {
	e, ok := l.ExpenseByID(id)
	if !ok {
		return ErrUnknownEntity
	}
	limit, err := ParseAmount("limit", edit.Limit)
	if err != nil {
		return err
	}
	spent, err := ParseAmount("spent", edit.Spent)
	if err != nil {
		return err
	}
	category, err := RequireLabel("category", edit.Category)
	if err != nil {
		return err
	}

	e.SetCategory(category)
	e.SetLimit(limit)
	e.SetSpentDirectly(spent)
	e.SetNotes(strings.TrimSpace(edit.Notes))
	return nil
}

// EditSavings applies edit to the savings goal with the given ID.
func (l *Ledger) EditSavings(id string, edit SavingsEdit) error {
	s, ok := l.SavingsByID(id)
	if !ok {
		return ErrUnknownEntity
	}
	goal, err := ParseAmount("goal", edit.Goal)
	if err != nil {
		return err
	}
	saved, err := ParseAmount("saved", edit.Saved)
	if err != nil {
		return err
	}
	category, err := RequireLabel("category", edit.Category)
	if err != nil {
		return err
	}

	s.SetCategory(category)
	s.SetGoal(goal)
	s.SetSavedDirectly(saved)
	s.SetNotes(strings.TrimSpace(edit.Notes))
	return nil
}
