package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
// Expense participants reference users by email.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address (unique). Used for login and as
	// the participant identity on expenses.
	Email string

	// MobileNumber is the user's 10-digit mobile number.
	MobileNumber string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a User with a fresh ID and creation timestamp.
func NewUser(name, email, mobileNumber, passwordHash string) *User {
	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().Unix(),
	}
}
