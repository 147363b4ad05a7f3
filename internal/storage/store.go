// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/splitledger/splitledger/internal/models"
)

// Store defines the interface for user and expense persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateExpense persists a new expense with its participant shares.
	// The expense ID and CreatedAt are populated by the store when unset.
	// Expenses are immutable: there is no update or delete.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses retrieves every stored expense in creation order.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// ListExpensesByParticipant retrieves, in creation order, every
	// expense in which the email appears as a participant.
	ListExpensesByParticipant(ctx context.Context, email string) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
