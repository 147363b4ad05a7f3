package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
)

func TestBalanceSheetHandler(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	creator := models.NewUser("Creator", "creator@x.com", "9876543210", "hash")
	require.NoError(t, store.CreateUser(context.Background(), creator))

	expense := &models.Expense{
		Amount:    decimal.RequireFromString("100"),
		SplitType: models.SplitExact,
		CreatedBy: creator.ID,
		Participants: []models.Participant{
			{Email: "alice@x.com", AmountOwed: decimal.RequireFromString("40")},
			{Email: "bob@x.com", AmountOwed: decimal.RequireFromString("60")},
		},
	}
	require.NoError(t, store.CreateExpense(context.Background(), expense))

	rec := httptest.NewRecorder()
	BalanceSheetHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/api/expenses/download/balance-sheet", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=balance_sheet.csv", rec.Header().Get("Content-Disposition"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2, "header plus one row per expense")
	assert.Equal(t, "Expense Amount,Split Type,Participants", lines[0])
	assert.Equal(t, "100,exact,alice@x.com owes 40; bob@x.com owes 60", lines[1])
}

func TestBalanceSheetHandler_NoExpenses(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec := httptest.NewRecorder()
	BalanceSheetHandler(store)(rec, httptest.NewRequest(http.MethodGet, "/api/expenses/download/balance-sheet", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
