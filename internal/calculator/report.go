package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/models"
)

// BalanceEntry is one row of a per-participant balance summary: the share
// a participant owes on a single expense.
type BalanceEntry struct {
	Email      string
	AmountOwed decimal.Decimal
	CreatedAt  int64
}

// ForParticipant folds the expense collection into balance entries for one
// participant. Each expense containing the email contributes one entry with
// that participant's owed amount and the expense timestamp; within an
// expense only the first matching share is reported. Returns
// ErrNoExpensesForUser when nothing matches. Whether the email belongs to
// a registered user at all is the caller's check, made before this one.
func ForParticipant(expenses []*models.Expense, email string) ([]BalanceEntry, error) {
	var entries []BalanceEntry
	for _, e := range expenses {
		for _, p := range e.Participants {
			if p.Email == email {
				entries = append(entries, BalanceEntry{
					Email:      p.Email,
					AmountOwed: p.AmountOwed,
					CreatedAt:  e.CreatedAt,
				})
				break
			}
		}
	}
	if len(entries) == 0 {
		return nil, ErrNoExpensesForUser
	}
	return entries, nil
}

// All returns the expense collection unfiltered, in storage order.
// Returns ErrNoExpenses when the collection is empty.
func All(expenses []*models.Expense) ([]*models.Expense, error) {
	if len(expenses) == 0 {
		return nil, ErrNoExpenses
	}
	return expenses, nil
}

// ReportRow is one balance-sheet row. All fields are already rendered as
// text so a serializer (CSV, spreadsheet) can emit them as-is.
type ReportRow struct {
	Amount       string
	SplitType    string
	Participants string
}

// ReportHeader lists the balance-sheet column labels, in order. Consumers
// import spreadsheets against these exact labels, so they are fixed.
var ReportHeader = []string{"Expense Amount", "Split Type", "Participants"}

// ReportRows renders one row per expense. The participants column is a
// "<email> owes <amount>" segment per share, joined by "; ". An empty
// collection yields an empty report body; whether that is an error is the
// caller's call.
func ReportRows(expenses []*models.Expense) []ReportRow {
	rows := make([]ReportRow, len(expenses))
	for i, e := range expenses {
		segments := make([]string, len(e.Participants))
		for j, p := range e.Participants {
			segments[j] = fmt.Sprintf("%s owes %s", p.Email, p.AmountOwed.String())
		}
		rows[i] = ReportRow{
			Amount:       e.Amount.String(),
			SplitType:    string(e.SplitType),
			Participants: strings.Join(segments, "; "),
		}
	}
	return rows
}
