package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/splitledger/splitledger/internal/api"
	"github.com/splitledger/splitledger/internal/auth"
	"github.com/splitledger/splitledger/internal/middleware"
	"github.com/splitledger/splitledger/internal/models"
	"github.com/splitledger/splitledger/internal/storage/sqlite"
)

// testEnv carries the pieces service tests need: the store for seeding
// data and the base URL of an in-process server. The userID pointer feeds
// the auth interceptor, standing in for a validated JWT.
type testEnv struct {
	store  *sqlite.SQLiteStore
	url    string
	userID *string
}

// testAuthInterceptor injects *userID into the request context the way
// RequireAuth would after validating a token.
func testAuthInterceptor(userID *string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if *userID != "" {
				ctx = context.WithValue(ctx, middleware.UserIDKey, *userID)
			}
			return next(ctx, req)
		}
	}
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	userID := new(string)
	opts := connect.WithInterceptors(testAuthInterceptor(userID))
	logger := slog.Default()

	mux := http.NewServeMux()
	expensePath, expenseHandler := NewExpenseServiceHandler(NewExpenseService(store, logger), opts)
	mux.Handle(expensePath, expenseHandler)

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authPath, authHandler := NewAuthServiceHandler(
		NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store, logger), opts)
	mux.Handle(authPath, authHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{store: store, url: server.URL, userID: userID}
}

func newClient[Req, Res any](env *testEnv, procedure string) *connect.Client[Req, Res] {
	return connect.NewClient[Req, Res](http.DefaultClient, env.url+procedure, connect.WithCodec(api.Codec{}))
}

// seedUser registers a user directly in the store and returns it.
func seedUser(t *testing.T, env *testEnv, name, email string) *models.User {
	t.Helper()
	user := models.NewUser(name, email, "9876543210", "hashed-password")
	if err := env.store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

// assertCode fails the test unless err is a connect error with the given
// code.
func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("error code = %v, want %v (error: %v)", got, want, err)
	}
}
