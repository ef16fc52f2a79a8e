// Package sqlite implements the category and transaction stores on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/smartfin/statement-importer/internal/types"
)

// Store is a SQLite-backed implementation of both store interfaces.
// Amounts are persisted as decimal text, dates as RFC 3339 UTC.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if necessary) the database under dataDir.
func Open(dataDir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "smartfin.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		return nil, fmt.Errorf("failed to set database pragmas: %v", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// createTables creates the necessary tables in the database
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			UNIQUE(user_id, name)
		);

		CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			category_id INTEGER REFERENCES categories(id),
			name TEXT NOT NULL,
			sum TEXT NOT NULL,
			date TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_categories_user ON categories(user_id);
		CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id);
		CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
	`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %v", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListCategories returns all categories belonging to a user.
func (s *Store) ListCategories(ctx context.Context, userID int64) ([]types.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name FROM categories WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %v", err)
	}
	defer rows.Close()

	var categories []types.Category
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %v", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreateCategory creates a category for a user. Creating a name the user
// already has fails on the unique constraint.
func (s *Store) CreateCategory(ctx context.Context, userID int64, name string) (types.Category, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (user_id, name) VALUES (?, ?)`, userID, name)
	if err != nil {
		return types.Category{}, fmt.Errorf("creating category %q: %v", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return types.Category{}, fmt.Errorf("creating category %q: %v", name, err)
	}

	s.logger.Debug("created category", "id", id, "user", userID, "name", name)
	return types.Category{ID: id, UserID: userID, Name: name}, nil
}

// CreateTransaction persists a transaction and returns its id.
func (s *Store) CreateTransaction(ctx context.Context, input types.CreateTransaction) (int64, error) {
	var categoryID any
	if input.CategoryID != nil {
		categoryID = *input.CategoryID
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (user_id, category_id, name, sum, date) VALUES (?, ?, ?, ?, ?)`,
		input.UserID, categoryID, input.Name, input.Sum.String(),
		input.Date.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("creating transaction: %v", err)
	}
	return res.LastInsertId()
}

// GetTransactionByID returns a transaction, or nil when it does not exist.
func (s *Store) GetTransactionByID(ctx context.Context, id int64) (*types.Transaction, error) {
	var (
		t          types.Transaction
		categoryID sql.NullInt64
		sum        string
		date       string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, category_id, name, sum, date FROM transactions WHERE id = ?`, id).
		Scan(&t.ID, &t.UserID, &categoryID, &t.Name, &sum, &date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting transaction %d: %v", id, err)
	}

	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	if t.Sum, err = decimal.NewFromString(sum); err != nil {
		return nil, fmt.Errorf("decoding transaction %d amount: %v", id, err)
	}
	if t.Date, err = time.Parse(time.RFC3339, date); err != nil {
		return nil, fmt.Errorf("decoding transaction %d date: %v", id, err)
	}
	t.Date = t.Date.UTC()
	return &t, nil
}
