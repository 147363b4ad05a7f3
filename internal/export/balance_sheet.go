// Package export serves the balance sheet as a downloadable CSV file.
// The row and column shape comes from calculator.ReportRows; this package
// only encodes it.
package export

import (
	"encoding/csv"
	"log/slog"
	"net/http"

	"github.com/splitledger/splitledger/internal/calculator"
	"github.com/splitledger/splitledger/internal/storage"
)

// BalanceSheetHandler returns an HTTP handler that writes every stored
// expense as one CSV row with the fixed header
// "Expense Amount,Split Type,Participants".
func BalanceSheetHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := store.ListExpenses(r.Context())
		if err != nil {
			slog.Error("balance sheet: failed to list expenses", "error", err)
			http.Error(w, "error generating balance sheet", http.StatusInternalServerError)
			return
		}
		if len(expenses) == 0 {
			http.Error(w, "no expenses found to generate a balance sheet", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=balance_sheet.csv")

		cw := csv.NewWriter(w)
		if err := cw.Write(calculator.ReportHeader); err != nil {
			slog.Error("balance sheet: failed to write header", "error", err)
			return
		}
		for _, row := range calculator.ReportRows(expenses) {
			if err := cw.Write([]string{row.Amount, row.SplitType, row.Participants}); err != nil {
				slog.Error("balance sheet: failed to write row", "error", err)
				return
			}
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			slog.Error("balance sheet: failed to flush", "error", err)
		}
	}
}
