// Package service implements the splitledger Connect RPC services.
//
// There is no protobuf codegen in this project: procedures are registered
// by hand with connect.NewUnaryHandler and the JSON codec from the api
// package, under the same path scheme codegen would have produced.
package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/splitledger/splitledger/internal/api"
)

// Procedure paths for every RPC, mirroring the
// /<package>.<Service>/<Method> scheme.
const (
	AuthServiceRegisterProcedure       = "/splitledger.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/splitledger.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/splitledger.v1.AuthService/GetCurrentUser"

	ExpenseServiceCreateExpenseProcedure  = "/splitledger.v1.ExpenseService/CreateExpense"
	ExpenseServiceListMyExpensesProcedure = "/splitledger.v1.ExpenseService/ListMyExpenses"
	ExpenseServiceListExpensesProcedure   = "/splitledger.v1.ExpenseService/ListExpenses"
)

func withJSONCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

// NewAuthServiceHandler returns the path prefix and handler for the
// AuthService procedures.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(
		AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(
		AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceGetCurrentUserProcedure, connect.NewUnaryHandler(
		AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return "/splitledger.v1.AuthService/", mux
}

// NewExpenseServiceHandler returns the path prefix and handler for the
// ExpenseService procedures.
func NewExpenseServiceHandler(svc *ExpenseService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(ExpenseServiceCreateExpenseProcedure, connect.NewUnaryHandler(
		ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...))
	mux.Handle(ExpenseServiceListMyExpensesProcedure, connect.NewUnaryHandler(
		ExpenseServiceListMyExpensesProcedure, svc.ListMyExpenses, opts...))
	mux.Handle(ExpenseServiceListExpensesProcedure, connect.NewUnaryHandler(
		ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...))
	return "/splitledger.v1.ExpenseService/", mux
}
