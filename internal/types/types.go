package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawLine is a single line of statement text as produced by a line source.
// Page and Line index the line's position in reading order.
type RawLine struct {
	Text string
	Page int
	Line int
}

// Candidate is a provisionally parsed transaction, before persistence.
// A candidate is only built when both date and amount parsed unambiguously;
// Description may be empty, CategoryLabel may be empty when the format
// carries no category text. Amounts follow the convention that expenses are
// negative and income is positive.
type Candidate struct {
	Date          time.Time
	Amount        decimal.Decimal
	Description   string
	CategoryLabel string
}

// Category is a user-scoped transaction category.
type Category struct {
	ID     int64
	UserID int64
	Name   string
}

// Transaction is a persisted transaction as returned by the store.
type Transaction struct {
	ID         int64
	UserID     int64
	CategoryID *int64
	Name       string
	Sum        decimal.Decimal
	Date       time.Time
}

// CreateTransaction is the input for persisting a new transaction.
type CreateTransaction struct {
	UserID     int64
	CategoryID *int64
	Name       string
	Sum        decimal.Decimal
	Date       time.Time
}

// ImportResult aggregates the outcome of one statement import.
// Attempted counts every candidate the parser produced; Skipped counts
// candidates that failed to persist. Imports are best-effort, so
// Skipped > 0 does not fail the import.
type ImportResult struct {
	Imported  []Transaction
	Attempted int
	Skipped   int
}
