// Package importer coordinates one statement import: parser selection,
// line extraction, categorization and best-effort persistence.
package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/smartfin/statement-importer/internal/bank"
	"github.com/smartfin/statement-importer/internal/category"
	"github.com/smartfin/statement-importer/internal/statement"
	"github.com/smartfin/statement-importer/internal/store"
	"github.com/smartfin/statement-importer/internal/types"
)

// Importer drives statement imports against the configured stores.
type Importer struct {
	source       statement.LineSource
	categories   store.CategoryStore
	transactions store.TransactionStore
	logger       *log.Logger
}

// New creates an Importer.
func New(source statement.LineSource, categories store.CategoryStore, transactions store.TransactionStore, logger *log.Logger) *Importer {
	return &Importer{
		source:       source,
		categories:   categories,
		transactions: transactions,
		logger:       logger,
	}
}

// ImportStatement parses one statement document and persists its
// transactions for the user.
//
// Only two failures abort the call: an unknown bank identifier (checked
// before the document is touched, errors.Is bank.ErrUnknownBank) and a
// document the line source cannot read. A candidate that fails to persist
// is counted as skipped and the import continues.
func (im *Importer) ImportStatement(ctx context.Context, bankName string, userID int64, doc io.Reader) (*types.ImportResult, error) {
	id, err := bank.ParseID(bankName)
	if err != nil {
		return nil, err
	}
	parser := parserFor(id)

	lines, err := im.source.ExtractLines(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("reading %s statement: %w", parser.Name(), err)
	}
	im.logger.Debug("extracted statement lines", "bank", parser.Name(), "lines", len(lines))

	resolver := category.NewResolver(im.categories, parser.Categories(), userID, im.logger)

	result := &types.ImportResult{}
	for cand := range parser.Parse(lines) {
		result.Attempted++

		rec, err := im.persist(ctx, userID, cand, resolver)
		if err != nil {
			result.Skipped++
			im.logger.Warn("skipping transaction",
				"bank", parser.Name(), "description", cand.Description,
				"date", cand.Date, "error", err)
			continue
		}
		result.Imported = append(result.Imported, *rec)
	}

	im.logger.Info("statement import complete",
		"bank", parser.Name(), "user", userID,
		"imported", len(result.Imported), "skipped", result.Skipped)
	return result, nil
}

// persist stores one candidate and reads the created record back.
func (im *Importer) persist(ctx context.Context, userID int64, cand types.Candidate, resolver *category.Resolver) (*types.Transaction, error) {
	input := types.CreateTransaction{
		UserID:     userID,
		CategoryID: resolver.Resolve(ctx, cand.CategoryLabel),
		Name:       cand.Description,
		Sum:        cand.Amount,
		Date:       cand.Date.UTC(),
	}

	txID, err := im.transactions.CreateTransaction(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	rec, err := im.transactions.GetTransactionByID(ctx, txID)
	if err != nil {
		return nil, fmt.Errorf("reading back transaction %d: %w", txID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("transaction %d not found after create", txID)
	}
	return rec, nil
}
