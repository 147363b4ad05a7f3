package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitType is the policy used to divide an expense among its participants.
// The set is closed; adding a policy means touching every switch over it.
type SplitType string

const (
	// SplitEqual divides the amount evenly across all participants.
	SplitEqual SplitType = "equal"

	// SplitExact uses caller-supplied per-participant amounts, which must
	// sum to the expense amount.
	SplitExact SplitType = "exact"

	// SplitPercentage divides the amount by caller-supplied percentages,
	// which must sum to 100.
	SplitPercentage SplitType = "percentage"
)

// ParseSplitType converts a raw string into a SplitType.
func ParseSplitType(s string) (SplitType, error) {
	switch t := SplitType(s); t {
	case SplitEqual, SplitExact, SplitPercentage:
		return t, nil
	default:
		return "", fmt.Errorf("split type must be either equal, exact, or percentage, got %q", s)
	}
}

// Valid reports whether t is one of the known split types.
func (t SplitType) Valid() bool {
	switch t {
	case SplitEqual, SplitExact, SplitPercentage:
		return true
	}
	return false
}

// Participant is one computed share of an expense.
type Participant struct {
	// Email identifies the participant.
	Email string

	// AmountOwed is this participant's share, rounded to 2 decimal places
	// for equal and percentage splits, or the caller-supplied amount for
	// exact splits.
	AmountOwed decimal.Decimal
}

// Expense is a persisted shared expense with its computed shares.
// Immutable after creation.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Amount is the total expense amount.
	Amount decimal.Decimal

	// SplitType is the policy that produced the participant shares.
	SplitType SplitType

	// Participants holds the computed shares in the order they were
	// supplied on creation. Order is preserved, never sorted.
	Participants []Participant

	// CreatedBy is the ID of the user who recorded the expense.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the expense was created.
	CreatedAt int64
}
