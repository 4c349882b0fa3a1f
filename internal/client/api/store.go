// Package api talks to the remote CRUD data store. The store is a plain
// REST/JSON service exposing the users, transactions, and budgets
// collections; everything beyond simple CRUD lives on the client side.
package api

import (
	"context"

	"github.com/dmitrijs2005/mymoney/internal/client/models"
)

// Store is the remote data store seen by the rest of the client. Listing
// with an empty filter returns the whole collection. Implementations must
// honor context cancellation and propagate failures without retrying.
type Store interface {
	// ListUsers returns user records, optionally filtered by username.
	ListUsers(ctx context.Context, username string) ([]models.User, error)

	// CreateUser stores a new user record and returns the server echo with
	// its assigned id.
	CreateUser(ctx context.Context, payload models.RegisterCredentials) (models.User, error)

	// ListTransactions returns transactions, optionally filtered by userId.
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)

	// CreateTransaction stores a new transaction and returns the server echo.
	CreateTransaction(ctx context.Context, payload models.NewTransaction) (models.Transaction, error)

	// UpdateTransaction replaces the record with tx.ID and returns the echo.
	UpdateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)

	// DeleteTransaction removes the record with the given id.
	DeleteTransaction(ctx context.Context, id string) error

	// ListBudgets returns budgets, optionally filtered by userId.
	ListBudgets(ctx context.Context, userID string) ([]models.Budget, error)

	// CreateBudget stores a new budget and returns the server echo.
	CreateBudget(ctx context.Context, payload models.NewBudget) (models.Budget, error)

	// UpdateBudget replaces the record with b.ID and returns the echo.
	UpdateBudget(ctx context.Context, b models.Budget) (models.Budget, error)
}
