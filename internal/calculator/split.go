// Package calculator implements the expense split computation and the
// balance aggregation over stored expenses. Both are pure functions over
// their inputs; identity resolution and persistence belong to the caller.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/models"
)

// ShareInput is one participant entry in an expense request. ExactAmount
// and Percentage are pointers so an absent value can be told apart from
// an explicit zero; each is only meaningful under its own split type.
type ShareInput struct {
	Email       string
	ExactAmount *decimal.Decimal
	Percentage  *decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeSplit validates an expense request and computes each participant's
// owed share. All preconditions are checked in one pass; if any fail the
// returned error is a *ValidationError listing every violated rule and no
// shares are produced.
//
// Shares come back in input order. Duplicate emails are kept as separate
// shares. For equal and percentage splits each share is rounded to 2
// decimal places independently; the rounding remainder is not
// redistributed, so the rounded shares may drift from the total by up to
// n*0.005.
func ComputeSplit(amount decimal.Decimal, splitType models.SplitType, shares []ShareInput) ([]models.Participant, error) {
	if err := validate(amount, splitType, shares); err != nil {
		return nil, err
	}

	participants := make([]models.Participant, len(shares))
	switch splitType {
	case models.SplitEqual:
		owed := amount.Div(decimal.NewFromInt(int64(len(shares)))).Round(2)
		for i, s := range shares {
			participants[i] = models.Participant{Email: s.Email, AmountOwed: owed}
		}
	case models.SplitExact:
		for i, s := range shares {
			participants[i] = models.Participant{Email: s.Email, AmountOwed: *s.ExactAmount}
		}
	case models.SplitPercentage:
		for i, s := range shares {
			owed := amount.Mul(*s.Percentage).Div(hundred).Round(2)
			participants[i] = models.Participant{Email: s.Email, AmountOwed: owed}
		}
	}
	return participants, nil
}

// validate checks every precondition for the request and collects all
// violations rather than stopping at the first.
func validate(amount decimal.Decimal, splitType models.SplitType, shares []ShareInput) error {
	var violations []string

	if !amount.IsPositive() {
		violations = append(violations, "amount must be a positive number")
	}
	if !splitType.Valid() {
		violations = append(violations, "split type must be either equal, exact, or percentage")
	}
	if len(shares) == 0 {
		violations = append(violations, "participants must be a non-empty list")
	}

	switch splitType {
	case models.SplitExact:
		missing := false
		sum := decimal.Zero
		for _, s := range shares {
			if s.ExactAmount == nil || s.ExactAmount.IsNegative() {
				missing = true
				continue
			}
			sum = sum.Add(*s.ExactAmount)
		}
		if missing {
			violations = append(violations, "amount must be non-negative and provided for every participant in an exact split")
		} else if len(shares) > 0 && !sum.Equal(amount) {
			// Strict equality, no tolerance. Decimal arithmetic makes
			// this safe where float64 would not be.
			violations = append(violations, "the total amount for all participants must equal the expense amount")
		}
	case models.SplitPercentage:
		missing := false
		sum := decimal.Zero
		for _, s := range shares {
			if s.Percentage == nil || s.Percentage.IsNegative() || s.Percentage.GreaterThan(hundred) {
				missing = true
				continue
			}
			sum = sum.Add(*s.Percentage)
		}
		if missing {
			violations = append(violations, "percentage must be between 0 and 100 and provided for every participant in a percentage split")
		} else if len(shares) > 0 && !sum.Equal(hundred) {
			violations = append(violations, "the total percentage for all participants must equal 100")
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
