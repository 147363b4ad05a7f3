package calculator

import (
	"errors"
	"testing"

	"github.com/splitledger/splitledger/internal/models"
)

func expenseFixture(amount string, splitType models.SplitType, createdAt int64, shares ...[2]string) *models.Expense {
	e := &models.Expense{
		Amount:    dec(amount),
		SplitType: splitType,
		CreatedAt: createdAt,
	}
	for _, s := range shares {
		e.Participants = append(e.Participants, models.Participant{Email: s[0], AmountOwed: dec(s[1])})
	}
	return e
}

func TestForParticipant(t *testing.T) {
	expenses := []*models.Expense{
		expenseFixture("100", models.SplitEqual, 1000,
			[2]string{"alice@x.com", "50"}, [2]string{"bob@x.com", "50"}),
		expenseFixture("60", models.SplitExact, 2000,
			[2]string{"bob@x.com", "60"}),
		expenseFixture("200", models.SplitPercentage, 3000,
			[2]string{"alice@x.com", "150"}, [2]string{"carol@x.com", "50"}),
	}

	entries, err := ForParticipant(expenses, "alice@x.com")
	if err != nil {
		t.Fatalf("ForParticipant() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].AmountOwed.String() != "50" || entries[0].CreatedAt != 1000 {
		t.Errorf("entry 0 = %+v, want owed 50 at 1000", entries[0])
	}
	if entries[1].AmountOwed.String() != "150" || entries[1].CreatedAt != 3000 {
		t.Errorf("entry 1 = %+v, want owed 150 at 3000", entries[1])
	}
}

func TestForParticipant_NoMatches(t *testing.T) {
	expenses := []*models.Expense{
		expenseFixture("100", models.SplitEqual, 1000, [2]string{"bob@x.com", "100"}),
	}

	_, err := ForParticipant(expenses, "alice@x.com")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("error = %T, want *NotFoundError", err)
	}
	// A known user with no expenses must be distinguishable from an
	// unknown user.
	if err != ErrNoExpensesForUser {
		t.Errorf("error = %v, want ErrNoExpensesForUser", err)
	}
}

func TestForParticipant_EmptyCollection(t *testing.T) {
	if _, err := ForParticipant(nil, "alice@x.com"); err != ErrNoExpensesForUser {
		t.Errorf("error = %v, want ErrNoExpensesForUser", err)
	}
}

func TestForParticipant_DuplicateShareCountedOnce(t *testing.T) {
	expenses := []*models.Expense{
		expenseFixture("90", models.SplitEqual, 1000,
			[2]string{"a@x.com", "30"}, [2]string{"a@x.com", "30"}, [2]string{"b@x.com", "30"}),
	}

	entries, err := ForParticipant(expenses, "a@x.com")
	if err != nil {
		t.Fatalf("ForParticipant() error = %v", err)
	}
	// One entry per matching expense, first share wins.
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
}

func TestAll(t *testing.T) {
	expenses := []*models.Expense{
		expenseFixture("100", models.SplitEqual, 1000, [2]string{"a@x.com", "100"}),
		expenseFixture("50", models.SplitEqual, 2000, [2]string{"b@x.com", "50"}),
	}

	got, err := All(expenses)
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if len(got) != 2 || got[0] != expenses[0] || got[1] != expenses[1] {
		t.Error("All() must return the collection unfiltered in order")
	}

	if _, err := All(nil); err != ErrNoExpenses {
		t.Errorf("All(nil) error = %v, want ErrNoExpenses", err)
	}
}

func TestReportRows(t *testing.T) {
	expenses := []*models.Expense{
		expenseFixture("100", models.SplitEqual, 1000,
			[2]string{"alice@x.com", "33.33"}, [2]string{"bob@x.com", "33.33"}, [2]string{"carol@x.com", "33.33"}),
		expenseFixture("100", models.SplitExact, 2000,
			[2]string{"alice@x.com", "40"}, [2]string{"bob@x.com", "60"}),
	}

	rows := ReportRows(expenses)
	if len(rows) != len(expenses) {
		t.Fatalf("got %d rows, want %d", len(rows), len(expenses))
	}

	want := []ReportRow{
		{
			Amount:       "100",
			SplitType:    "equal",
			Participants: "alice@x.com owes 33.33; bob@x.com owes 33.33; carol@x.com owes 33.33",
		},
		{
			Amount:       "100",
			SplitType:    "exact",
			Participants: "alice@x.com owes 40; bob@x.com owes 60",
		},
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestReportRows_EmptyInput(t *testing.T) {
	// The renderer does not special-case emptiness; the caller decides
	// whether an empty report is an error.
	if rows := ReportRows(nil); len(rows) != 0 {
		t.Errorf("got %d rows for empty input, want 0", len(rows))
	}
}
