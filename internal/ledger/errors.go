package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrCapacity is matched by every CapacityError.
	ErrCapacity = errors.New("capacity reached")

	// ErrAllocation is matched by every AllocationError.
	ErrAllocation = errors.New("would exceed total income")

	// ErrOverGoal is returned under SavingsReject when a deposit passes the goal.
	ErrOverGoal = errors.New("would exceed savings goal")

	// ErrUnknownEntity is returned when an entity does not belong to the ledger.
	ErrUnknownEntity = errors.New("entity not in ledger")
)

// Kind names one of the three ledger collections.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
	KindSavings Kind = "savings"
)

// Title returns the capitalized display name.
func (k Kind) Title() string {
	switch k {
	case KindIncome:
		return "Income"
	case KindExpense:
		return "Expense"
	case KindSavings:
		return "Savings"
	}
	return string(k)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// CapacityError reports an add past a collection's cap.
type CapacityError struct {
	Kind Kind
	Max  int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s limit reached (%d max)", e.Kind.Title(), e.Max)
}

// Is matches ErrCapacity.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// AllocationError reports an add that would allocate more than total income.
type AllocationError struct {
	Kind      Kind
	Requested decimal.Decimal
	Allocated decimal.Decimal
	Income    decimal.Decimal
}

func (e *AllocationError) Error() string {
	what := "expense"
	if e.Kind == KindSavings {
		what = "savings goal"
	}
	return fmt.Sprintf("cannot add %s: would exceed total income (%s allocated + %s requested > %s)",
		what, e.Allocated.StringFixed(2), e.Requested.StringFixed(2), e.Income.StringFixed(2))
}

// Is matches ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// OverGoalError reports a savings deposit rejected by SavingsReject.
type OverGoalError struct {
	Category string
	Amount   decimal.Decimal
	MoreToGo decimal.Decimal
}

func (e *OverGoalError) Error() string {
	return fmt.Sprintf("cannot save %s to %q: only %s to go",
		e.Amount.StringFixed(2), e.Category, e.MoreToGo.StringFixed(2))
}

// Is matches ErrOverGoal.
func (e *OverGoalError) Is(target error) bool { return target == ErrOverGoal }

// IsUserError reports whether err is a rejection the user can fix by
// changing their input, as opposed to an internal failure.
func IsUserError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrCapacity) ||
		errors.Is(err, ErrAllocation) ||
		errors.Is(err, ErrOverGoal)
}
