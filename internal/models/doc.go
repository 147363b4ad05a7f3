// Package models defines the core domain models for splitledger.
//
// An Expense records a shared purchase: the total amount, the policy used
// to divide it (equal, exact, percentage), and the ordered list of
// participants with the share each one owes. Expenses are immutable once
// created; there are no update or delete operations.
//
// Participants are identified by email. The same email may appear more
// than once in a single expense; each occurrence is an independent share.
//
// Monetary values use shopspring/decimal rather than float64 so that the
// exact-sum preconditions (exact amounts summing to the total, percentages
// summing to 100) can be checked with true equality.
package models
