package ledger

import (
	"github.com/theirongolddev/walletpal/internal/model"

	"github.com/shopspring/decimal"
)

// Proposal is the outcome of validating a spend or save amount against
// what is left in the category. It is not an error: when
// NeedsConfirmation is set the caller asks the user and then either
// confirms or drops the proposal.
type Proposal struct {
	Amount            decimal.Decimal
	Remaining         decimal.Decimal // remaining or more-to-go before the amount
	Overage           decimal.Decimal // amount past Remaining, zero when within
	NeedsConfirmation bool
	Applied           bool
}

func propose(amount, left decimal.Decimal) Proposal {
	p := Proposal{Amount: amount, Remaining: left}
	if amount.GreaterThan(left) {
		p.NeedsConfirmation = true
		p.Overage = amount.Sub(left)
	}
	return p
}

// ProposeSpend validates amount against e without changing anything.
func ProposeSpend(e *model.Expense, amount string) (Proposal, error) {
	amt, err := ParseAmount("amount", amount)
	if err != nil {
		return Proposal{}, err
	}
	return propose(amt, e.Remaining()), nil
}

// RecordSpend applies amount to e when it fits within the remaining
// budget. An overage is returned unapplied for the caller to confirm.
func RecordSpend(e *model.Expense, amount string) (Proposal, error) {
	p, err := ProposeSpend(e, amount)
	if err != nil {
		return p, err
	}
	if !p.NeedsConfirmation {
		e.AddSpent(p.Amount)
		p.Applied = true
	}
	return p, nil
}

// ConfirmSpend applies a proposal the user accepted.
func ConfirmSpend(e *model.Expense, p Proposal) Proposal {
	if p.Applied {
		return p
	}
	e.AddSpent(p.Amount)
	p.Applied = true
	return p
}

// ProposeSave validates amount against s. Under SavingsReject an amount
// past the goal is an OverGoalError rather than a confirmable overage.
func (l *Ledger) ProposeSave(s *model.Savings, amount string) (Proposal, error) {
	amt, err := ParseAmount("amount", amount)
	if err != nil {
		return Proposal{}, err
	}
	p := propose(amt, s.MoreToGo())
	if p.NeedsConfirmation && l.policy == SavingsReject {
		return Proposal{}, &OverGoalError{Category: s.Category(), Amount: amt, MoreToGo: s.MoreToGo()}
	}
	return p, nil
}

// RecordSave applies amount to s when it fits within the goal.
func (l *Ledger) RecordSave(s *model.Savings, amount string) (Proposal, error) {
	p, err := l.ProposeSave(s, amount)
	if err != nil {
		return p, err
	}
	if !p.NeedsConfirmation {
		s.AddSaved(p.Amount)
		p.Applied = true
	}
	return p, nil
}

// ConfirmSave applies a savings proposal the user accepted.
func ConfirmSave(s *model.Savings, p Proposal) Proposal {
	if p.Applied {
		return p
	}
	s.AddSaved(p.Amount)
	p.Applied = true
	return p
}
