package ledger

import (
	"fmt"
	"strings"
)

// SavingsPolicy selects how a deposit past a savings goal is handled.
type SavingsPolicy string

const (
	// SavingsConfirm treats an over-goal deposit like a spend overage:
	// the caller must confirm it.
	SavingsConfirm SavingsPolicy = "confirm"
	// SavingsReject refuses any deposit that would pass the goal.
	SavingsReject SavingsPolicy = "reject"
)

// ParseSavingsPolicy parses a policy name. Empty means SavingsConfirm.
func ParseSavingsPolicy(s string) (SavingsPolicy, error) {
	switch SavingsPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", SavingsConfirm:
		return SavingsConfirm, nil
	case SavingsReject:
		return SavingsReject, nil
	}
	return "", fmt.Errorf("unknown savings overage policy %q (want confirm or reject)", s)
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithSavingsPolicy sets the savings overage policy.
func WithSavingsPolicy(p SavingsPolicy) Option {
	return func(l *Ledger) {
		if p != "" {
			l.policy = p
		}
	}
}
