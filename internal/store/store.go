// Package store declares the persistence collaborators the import pipeline
// depends on. Implementations live in subpackages.
package store

import (
	"context"

	"github.com/smartfin/statement-importer/internal/types"
)

// CategoryStore persists user categories.
type CategoryStore interface {
	// ListCategories returns all categories belonging to a user.
	ListCategories(ctx context.Context, userID int64) ([]types.Category, error)

	// CreateCategory creates a category for a user and returns it.
	CreateCategory(ctx context.Context, userID int64, name string) (types.Category, error)
}

// TransactionStore persists transactions.
type TransactionStore interface {
	// CreateTransaction persists a transaction and returns its id.
	CreateTransaction(ctx context.Context, input types.CreateTransaction) (int64, error)

	// GetTransactionByID returns a transaction, or nil when it does not exist.
	GetTransactionByID(ctx context.Context, id int64) (*types.Transaction, error)
}
