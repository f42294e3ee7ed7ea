// Package cli wires the cobra command tree for the orcato binary.
// One-shot commands persist through SaveNow; the interactive editor
// leans on the debounced saver and flushes it on exit.
package cli

import (
	"github.com/felipearaujo/orcato/internal/catalog"
	"github.com/felipearaujo/orcato/internal/debounce"
	"github.com/felipearaujo/orcato/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and shared state CLI commands use.
type App struct {
	Pricing service.PricingService
	Budgets service.BudgetService
	Catalog *catalog.Catalog
	Saver   *debounce.Debouncer

	// IsInteractive reports whether stdin is a terminal; the budget
	// editor and forms refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "orcato" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "orcato",
		Short: "Architecture budget configurator and derivation engine",
	}

	root.AddCommand(
		newOfficeCmd(app),
		newBudgetCmd(app),
	)

	return root
}
