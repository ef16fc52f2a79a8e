package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/smartfin/statement-importer/internal/commands"
	"github.com/smartfin/statement-importer/internal/importer"
	"github.com/smartfin/statement-importer/internal/progress"
	"github.com/smartfin/statement-importer/internal/statement"
	"github.com/smartfin/statement-importer/internal/store/sqlite"
)

type CLI struct {
	commands.CommonConfig

	Bank        string   `help:"Statement format to parse" required:"" enum:"sberbank,tinkoff,vtb,yandex"`
	UserID      int64    `help:"User to import transactions for" required:""`
	Concurrency int      `help:"Number of statements to import concurrently" default:"1"`
	NoProgress  bool     `help:"Disable progress bar" default:"false"`
	Files       []string `arg:"" help:"Statement text files to import" type:"existingfile"`
}

func (c *CLI) Run() error {
	logger := log.New(os.Stderr)

	// Set log level
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		logger.Fatal("Invalid log level", "error", err)
	}
	logger.SetLevel(level)

	// Initialize database-backed stores
	db, err := sqlite.Open(c.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", "error", err)
	}
	defer db.Close()

	imp := importer.New(statement.NewTextSource(), db, db, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var bar progress.Progress = progress.NewNoopProgress()
	if !c.NoProgress && len(c.Files) > 1 {
		bar = progress.NewBarProgress(len(c.Files), "Importing statements")
	}

	// Each file is an independent import; they share no parser or cache
	// state, so fan-out is safe.
	var (
		mu       sync.Mutex
		imported int
		skipped  int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for _, file := range c.Files {
		g.Go(func() error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening %s: %w", file, err)
			}
			defer f.Close()

			result, err := imp.ImportStatement(gctx, c.Bank, c.UserID, f)
			if err != nil {
				return fmt.Errorf("importing %s: %w", file, err)
			}

			mu.Lock()
			imported += len(result.Imported)
			skipped += result.Skipped
			mu.Unlock()
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	bar.Close()

	fmt.Printf("Imported %d transactions (%d skipped) from %d statement(s)\n",
		imported, skipped, len(c.Files))
	return nil
}

func main() {
	// Parse CLI commands
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("statement-importer"),
		kong.Description("Import bank statement exports into SmartFin"),
		kong.UsageOnError(),
	)

	// Run the selected command
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
