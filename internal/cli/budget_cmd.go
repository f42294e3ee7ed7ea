package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/felipearaujo/orcato/internal/budget"
	"github.com/felipearaujo/orcato/internal/cli/formatter"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Create and edit project budgets",
	}

	cmd.AddCommand(
		newBudgetNewCmd(app),
		newBudgetShowCmd(app),
		newBudgetListCmd(app),
		newBudgetDeleteCmd(app),
		newBudgetToggleCmd(app),
		newBudgetConfigCmd(app),
		newBudgetParamsCmd(app),
		newBudgetScheduleCmd(app),
		newBudgetDisciplinesCmd(app),
		newBudgetEditCmd(app),
	)

	return cmd
}

// paramFlags registers the project parameter flags shared by "new" and
// "params" and returns a builder that reads them back.
func paramFlags(fs *pflag.FlagSet) func() domain.ProjectParams {
	var (
		area, discount      float64
		region, standard    string
		complexity, payment string
		fastTrack           bool
	)

	fs.Float64Var(&area, "area", 0, "Built area in square meters")
	fs.StringVar(&region, "region", "capital", "Region (capital, metropolitan, countryside, coastal)")
	fs.StringVar(&standard, "standard", "standard", "Construction standard (economy, standard, high, luxury)")
	fs.StringVar(&complexity, "complexity", "medium", "Complexity (low, medium, high, very_high)")
	fs.Float64Var(&discount, "discount", 0, "Discount percentage")
	fs.StringVar(&payment, "payment", "cash", "Payment plan (cash, 50_50, installments)")
	fs.BoolVar(&fastTrack, "fast-track", false, "Compress the schedule")

	return func() domain.ProjectParams {
		p := domain.ProjectParams{
			Area:        area,
			Region:      region,
			Standard:    standard,
			Complexity:  complexity,
			DiscountPct: discount,
			PaymentPlan: domain.PaymentPlan(payment),
		}
		if fastTrack {
			p.Urgency = domain.UrgencyFastTrack
		}
		return p
	}
}

func openBudget(app *App, budgetID, officeID string, params domain.ProjectParams) (*budget.Session, error) {
	if officeID == "" {
		return nil, errors.New("--office is required")
	}
	return app.Budgets.Open(context.Background(), budgetID, officeID, params)
}

func newBudgetNewCmd(app *App) *cobra.Command {
	var officeID, budgetID string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a budget",
	}
	readParams := paramFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params := readParams()

		if interactive {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("interactive mode requires a terminal")
			}
			if err := runParamsForm(&params); err != nil {
				return err
			}
		}
		if err := params.Validate(); err != nil {
			return err
		}

		session, err := openBudget(app, budgetID, officeID, params)
		if err != nil {
			return err
		}
		if err := session.UpdateParams(params); err != nil {
			return err
		}
		if err := session.SaveNow(context.Background()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBudget(session.Snapshot()))
		return nil
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	cmd.Flags().StringVar(&budgetID, "budget", "", "Budget ID (generated when empty)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect parameters through a form")
	_ = cmd.MarkFlagRequired("office")

	return cmd
}

func newBudgetShowCmd(app *App) *cobra.Command {
	var officeID, budgetID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a budget's breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBudget(session.Snapshot()))
			return nil
		},
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	return cmd
}

func newBudgetListCmd(app *App) *cobra.Command {
	var officeID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an office's budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			budgets, err := app.Budgets.List(context.Background(), officeID)
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No budgets found.")
				return nil
			}

			rows := make([][]string, 0, len(budgets))
			for _, b := range budgets {
				rows = append(rows, []string{
					b.BudgetID,
					fmt.Sprintf("%.0fm²", b.Params.Area),
					fmt.Sprintf("%d disciplines", len(b.Active)),
					formatter.Dim(b.UpdatedAt.Format("2006-01-02 15:04")),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.RenderTable([]string{"Budget", "Area", "Selection", "Updated"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	_ = cmd.MarkFlagRequired("office")

	return cmd
}

func newBudgetDeleteCmd(app *App) *cobra.Command {
	var budgetID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Budgets.Delete(context.Background(), budgetID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted budget %s\n", budgetID)
			return nil
		},
	}

	cmd.Flags().StringVar(&budgetID, "budget", "", "Budget ID")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newBudgetToggleCmd(app *App) *cobra.Command {
	var officeID, budgetID string

	cmd := &cobra.Command{
		Use:   "toggle <code>",
		Short: "Toggle a discipline on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
			if err != nil {
				return err
			}

			code := strings.ToUpper(args[0])
			res, err := session.ToggleDiscipline(code)
			if err != nil {
				return err
			}
			if err := session.SaveNow(context.Background()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.Activated) > 0 {
				fmt.Fprintf(out, "Activated: %s\n", strings.Join(res.Activated, ", "))
			}
			if len(res.Deactivated) > 0 {
				fmt.Fprintf(out, "Deactivated: %s\n", strings.Join(res.Deactivated, ", "))
			}
			fmt.Fprintf(out, "Total: %s\n", formatter.Money(session.Total()))
			return nil
		},
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	return cmd
}

func newBudgetConfigCmd(app *App) *cobra.Command {
	var officeID, budgetID string
	var value, hourlyRate, complexityMult float64
	var clear bool

	cmd := &cobra.Command{
		Use:   "config <code>",
		Short: "Override a discipline's pricing for this budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
			if err != nil {
				return err
			}

			code := strings.ToUpper(args[0])
			var cfg domain.DisciplineConfig
			if !clear {
				if value > 0 {
					cfg.ValueOverride = domain.Float64Ptr(value)
				}
				if hourlyRate > 0 {
					cfg.HourlyRateOverride = domain.Float64Ptr(hourlyRate)
				}
				if complexityMult > 0 {
					cfg.ComplexityMultOverride = domain.Float64Ptr(complexityMult)
				}
			}

			if err := session.UpdateConfig(code, cfg); err != nil {
				return err
			}
			if err := session.SaveNow(context.Background()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", formatter.Money(session.Total()))
			return nil
		},
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	cmd.Flags().Float64Var(&value, "value", 0, "Personalized value")
	cmd.Flags().Float64Var(&hourlyRate, "hourly-rate", 0, "Hourly rate override")
	cmd.Flags().Float64Var(&complexityMult, "complexity-mult", 0, "Complexity multiplier override")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove all overrides for the discipline")

	return cmd
}

func newBudgetParamsCmd(app *App) *cobra.Command {
	var officeID, budgetID string

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Update a budget's project parameters",
	}
	readParams := paramFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
		if err != nil {
			return err
		}

		if err := session.UpdateParams(readParams()); err != nil {
			return err
		}
		if err := session.SaveNow(context.Background()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBudget(session.Snapshot()))
		return nil
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	return cmd
}

func newBudgetScheduleCmd(app *App) *cobra.Command {
	var officeID, budgetID string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show a budget's delivery schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSchedule(session.Schedule()))
			return nil
		},
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	return cmd
}

func newBudgetDisciplinesCmd(app *App) *cobra.Command {
	var officeID, budgetID string

	cmd := &cobra.Command{
		Use:   "disciplines",
		Short: "List disciplines with activation state",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatDisciplineList(app.Catalog.All(), session.IsActive))
			return nil
		},
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	return cmd
}

func newBudgetEditCmd(app *App) *cobra.Command {
	var officeID, budgetID string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a budget interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("budget edit requires a terminal")
			}

			session, err := openBudget(app, budgetID, officeID, domain.ProjectParams{})
			if err != nil {
				return err
			}
			defer app.Saver.Flush()

			return runBudgetEditor(app, session)
		},
	}

	addBudgetFlags(cmd, &officeID, &budgetID)
	return cmd
}

func addBudgetFlags(cmd *cobra.Command, officeID, budgetID *string) {
	cmd.Flags().StringVar(officeID, "office", "", "Office ID")
	cmd.Flags().StringVar(budgetID, "budget", "", "Budget ID")
	_ = cmd.MarkFlagRequired("office")
	_ = cmd.MarkFlagRequired("budget")
}
