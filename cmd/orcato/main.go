package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/cli"
	"github.com/felipearaujo/orcato/internal/db"
	"github.com/felipearaujo/orcato/internal/debounce"
	"github.com/felipearaujo/orcato/internal/repository"
	"github.com/felipearaujo/orcato/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.orcato/orcato.db
	dbPath := os.Getenv("ORCATO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".orcato", "orcato.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	level := slog.LevelWarn
	if os.Getenv("ORCATO_VERBOSE") != "" {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var observers []service.UseCaseObserver
	if os.Getenv("ORCATO_VERBOSE") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	pricingRepo := repository.NewSQLitePricingRepo(database)
	selectionRepo := repository.NewSQLiteSelectionRepo(database)

	// Pending budget writes are flushed before the process exits.
	saver := debounce.New(debounce.DefaultWindow)
	defer saver.Close()

	cat := catalog.Default()

	app := &cli.App{
		Pricing: service.NewPricingService(pricingRepo, selectionRepo, cat, observers...),
		Budgets: service.NewBudgetService(cat, pricingRepo, selectionRepo, saver, logger, observers...),
		Catalog: cat,
		Saver:   saver,
	}

	// Detect interactive terminal for the budget editor and forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
