package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/splitledger/splitledger/internal/api"
	"github.com/splitledger/splitledger/internal/auth"
	"github.com/splitledger/splitledger/internal/calculator"
	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage"
)

// ExpenseService implements expense creation and balance queries on top
// of the calculator package.
type ExpenseService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewExpenseService creates a new ExpenseService with the given storage
// backend.
func NewExpenseService(store storage.Store, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{store: store, logger: logger}
}

func apiExpense(e *models.Expense) api.Expense {
	out := api.Expense{
		ID:        e.ID,
		Amount:    e.Amount,
		SplitType: string(e.SplitType),
		CreatedAt: e.CreatedAt,
	}
	for _, p := range e.Participants {
		out.Participants = append(out.Participants, api.Participant{
			Email:      p.Email,
			AmountOwed: p.AmountOwed,
		})
	}
	return out
}

// CreateExpense validates the request, resolves every participant to a
// registered user, computes the split, and persists the resulting
// expense. Validation failures reject the request whole; no expense is
// stored.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	msg := req.Msg

	// Identity resolution happens before the calculator runs; the
	// calculator trusts its inputs reference known users.
	for _, p := range msg.Participants {
		user, err := s.store.GetUserByEmail(ctx, p.Email)
		if err != nil {
			s.logger.Error("participant lookup failed", "email", p.Email, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		if user == nil {
			return nil, connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("%s cannot be found in database", p.Email))
		}
	}

	shares := make([]calculator.ShareInput, len(msg.Participants))
	for i, p := range msg.Participants {
		shares[i] = calculator.ShareInput{
			Email:       p.Email,
			ExactAmount: p.Amount,
			Percentage:  p.Percentage,
		}
	}

	// The raw split type goes straight to the calculator so an unknown
	// value is reported alongside any other violations.
	participants, err := calculator.ComputeSplit(msg.Amount, models.SplitType(msg.SplitType), shares)
	if err != nil {
		s.logger.Warn("split computation rejected", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		Amount:       msg.Amount,
		SplitType:    models.SplitType(msg.SplitType),
		Participants: participants,
		CreatedBy:    userID,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.Error("failed to store expense", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("expense created",
		"expense_id", expense.ID,
		"split_type", expense.SplitType,
		"amount", expense.Amount,
		"participants", len(expense.Participants),
	)
	return connect.NewResponse(&api.CreateExpenseResponse{Expense: apiExpense(expense)}), nil
}

// ListMyExpenses returns the caller's balance entries: one per stored
// expense they participate in.
func (s *ExpenseService) ListMyExpenses(ctx context.Context, _ *connect.Request[api.ListMyExpensesRequest]) (*connect.Response[api.ListMyExpensesResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load user", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeNotFound, calculator.ErrUserNotFound)
	}

	expenses, err := s.store.ListExpensesByParticipant(ctx, user.Email)
	if err != nil {
		s.logger.Error("failed to list expenses", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	entries, err := calculator.ForParticipant(expenses, user.Email)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	resp := &api.ListMyExpensesResponse{}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, api.BalanceEntry{
			User:       user.Name,
			AmountOwed: e.AmountOwed,
			CreatedAt:  e.CreatedAt,
		})
	}
	return connect.NewResponse(resp), nil
}

// ListExpenses returns every stored expense in creation order.
func (s *ExpenseService) ListExpenses(ctx context.Context, _ *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	all, err := calculator.All(expenses)
	if err != nil {
		var nfe *calculator.NotFoundError
		if errors.As(err, &nfe) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.ListExpensesResponse{}
	for _, e := range all {
		resp.Expenses = append(resp.Expenses, apiExpense(e))
	}
	return connect.NewResponse(resp), nil
}
