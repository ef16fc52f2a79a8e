package sqlite

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/smartfin/statement-importer/internal/types"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	// Create a temporary directory for the test database
	tempDir, err := os.MkdirTemp("", "statement-importer-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	// Create a logger that discards output
	logger := log.New(io.Discard)

	store, err := Open(tempDir, logger)
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("failed to open store: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tempDir)
	}

	return store, cleanup
}

func TestCreateAndListCategories(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	created, err := store.CreateCategory(ctx, 1, "Продукты")
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a non-zero category id")
	}

	// Categories are scoped per user
	if _, err := store.CreateCategory(ctx, 2, "Продукты"); err != nil {
		t.Fatalf("failed to create category for second user: %v", err)
	}

	categories, err := store.ListCategories(ctx, 1)
	if err != nil {
		t.Fatalf("failed to list categories: %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(categories))
	}
	if categories[0].Name != "Продукты" {
		t.Errorf("expected name %q, got %q", "Продукты", categories[0].Name)
	}
}

func TestCreateDuplicateCategoryFails(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	if _, err := store.CreateCategory(ctx, 1, "Переводы"); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	if _, err := store.CreateCategory(ctx, 1, "Переводы"); err == nil {
		t.Fatal("expected duplicate category creation to fail")
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	category, err := store.CreateCategory(ctx, 1, "Кафе и рестораны")
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	date := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	sum := decimal.RequireFromString("-1234.56")

	id, err := store.CreateTransaction(ctx, types.CreateTransaction{
		UserID:     1,
		CategoryID: &category.ID,
		Name:       "Coffee Shop",
		Sum:        sum,
		Date:       date,
	})
	if err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	tx, err := store.GetTransactionByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get transaction: %v", err)
	}
	if tx == nil {
		t.Fatal("expected to find transaction, got nil")
	}

	if !tx.Sum.Equal(sum) {
		t.Errorf("expected sum %s, got %s", sum, tx.Sum)
	}
	if !tx.Date.Equal(date) {
		t.Errorf("expected date %s, got %s", date, tx.Date)
	}
	if tx.Name != "Coffee Shop" {
		t.Errorf("expected name %q, got %q", "Coffee Shop", tx.Name)
	}
	if tx.CategoryID == nil || *tx.CategoryID != category.ID {
		t.Errorf("expected category id %d, got %v", category.ID, tx.CategoryID)
	}
}

func TestTransactionWithoutCategory(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	id, err := store.CreateTransaction(ctx, types.CreateTransaction{
		UserID: 1,
		Name:   "Uncategorized",
		Sum:    decimal.RequireFromString("-10"),
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}

	tx, err := store.GetTransactionByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get transaction: %v", err)
	}
	if tx.CategoryID != nil {
		t.Errorf("expected nil category id, got %v", *tx.CategoryID)
	}
}

func TestGetMissingTransaction(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	tx, err := store.GetTransactionByID(context.Background(), 12345)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx != nil {
		t.Fatalf("expected nil for missing transaction, got %+v", tx)
	}
}
