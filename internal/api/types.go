// Package api defines the request and response types for the splitledger
// RPC services. These are plain structs exchanged as JSON; there is no
// protobuf schema.
package api

import "github.com/shopspring/decimal"

// User is the public view of a registered account. The password hash
// never leaves the server.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	CreatedAt    int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Password     string `json:"password"`
}

type RegisterResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User User `json:"user"`
}

// ParticipantShare is one participant entry in a create-expense request.
// Amount is required for exact splits, Percentage for percentage splits;
// both are ignored for equal splits.
type ParticipantShare struct {
	Email      string           `json:"email"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
}

type CreateExpenseRequest struct {
	Amount       decimal.Decimal    `json:"amount"`
	SplitType    string             `json:"splitType"`
	Participants []ParticipantShare `json:"participants"`
}

// Participant is one computed share of an expense.
type Participant struct {
	Email      string          `json:"email"`
	AmountOwed decimal.Decimal `json:"amountOwed"`
}

// Expense is a stored expense with its computed shares, in submission
// order.
type Expense struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	SplitType    string          `json:"splitType"`
	Participants []Participant   `json:"participants"`
	CreatedAt    int64           `json:"createdAt"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListMyExpensesRequest struct{}

// BalanceEntry is one row of the caller's balance summary: what they owe
// on one expense.
type BalanceEntry struct {
	User       string          `json:"user"`
	AmountOwed decimal.Decimal `json:"amountOwed"`
	CreatedAt  int64           `json:"createdAt"`
}

type ListMyExpensesResponse struct {
	Entries []BalanceEntry `json:"entries"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}
