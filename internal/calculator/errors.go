package calculator

import "strings"

// ValidationError reports every precondition an expense request violated.
// The request is rejected whole; no shares are computed when any rule fails.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid expense request: " + strings.Join(e.Violations, "; ")
}

// NotFoundError signals an aggregation query that matched nothing. The
// Reason distinguishes an unknown user from a user with no expenses so
// callers can respond differently.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	return e.Reason
}

var (
	// ErrUserNotFound is returned when the queried identity does not
	// resolve to a registered user.
	ErrUserNotFound = &NotFoundError{Reason: "user not found"}

	// ErrNoExpensesForUser is returned when a known user appears in no
	// stored expenses.
	ErrNoExpensesForUser = &NotFoundError{Reason: "no expenses found for this user"}

	// ErrNoExpenses is returned when the expense collection is empty.
	ErrNoExpenses = &NotFoundError{Reason: "no expenses found"}
)
