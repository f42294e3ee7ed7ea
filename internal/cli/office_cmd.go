package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/felipearaujo/orcato/internal/cli/formatter"
	"github.com/felipearaujo/orcato/internal/domain"
	"github.com/spf13/cobra"
)

func newOfficeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "office",
		Short: "Manage office pricing tables",
	}

	cmd.AddCommand(
		newOfficeInitCmd(app),
		newOfficeShowCmd(app),
		newOfficeListCmd(app),
		newOfficeImportCmd(app),
		newOfficeExportCmd(app),
		newOfficeSetDisciplineCmd(app),
		newOfficeDefaultCmd(app),
	)

	return cmd
}

func newOfficeInitCmd(app *App) *cobra.Command {
	var officeID string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Seed a pricing table from catalog defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Pricing.InitDefaults(context.Background(), officeID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized pricing for office %s (%d disciplines)\n",
				table.OfficeID, len(table.Disciplines))
			return nil
		},
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	_ = cmd.MarkFlagRequired("office")

	return cmd
}

func newOfficeShowCmd(app *App) *cobra.Command {
	var officeID string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show an office's pricing table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Pricing.Get(context.Background(), officeID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPricingTable(table))
			return nil
		},
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	_ = cmd.MarkFlagRequired("office")

	return cmd
}

func newOfficeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List offices with pricing configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := app.Pricing.List(context.Background())
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No offices configured.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}

func newOfficeImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a pricing table from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Pricing.ImportFile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported pricing for office %s (%d disciplines)\n",
				table.OfficeID, len(table.Disciplines))
			return nil
		},
	}
}

func newOfficeExportCmd(app *App) *cobra.Command {
	var officeID string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export an office's pricing table to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Pricing.ExportFile(context.Background(), officeID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported pricing for office %s to %s\n", officeID, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	_ = cmd.MarkFlagRequired("office")

	return cmd
}

func newOfficeSetDisciplineCmd(app *App) *cobra.Command {
	var (
		officeID, code         string
		baseValue, perArea     float64
		hourlyRate, complexity float64
		hours                  int
		inactive               bool
	)

	cmd := &cobra.Command{
		Use:   "set-discipline",
		Short: "Set one discipline's pricing entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := domain.DisciplinePricing{
				Active:                !inactive,
				BaseValue:             baseValue,
				ValuePerArea:          perArea,
				HourlyRate:            hourlyRate,
				EstimatedHours:        hours,
				DefaultComplexityMult: complexity,
			}
			code = strings.ToUpper(code)
			if err := app.Pricing.SetDiscipline(context.Background(), officeID, code, entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s for office %s\n", code, officeID)
			return nil
		},
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	cmd.Flags().StringVar(&code, "code", "", "Discipline code")
	cmd.Flags().Float64Var(&baseValue, "base-value", 0, "Flat base value")
	cmd.Flags().Float64Var(&perArea, "value-per-area", 0, "Value per square meter (overrides base value)")
	cmd.Flags().Float64Var(&hourlyRate, "hourly-rate", 0, "Hourly rate")
	cmd.Flags().IntVar(&hours, "hours", 0, "Estimated hours")
	cmd.Flags().Float64Var(&complexity, "complexity-mult", 0, "Default complexity multiplier")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Mark the entry inactive")
	_ = cmd.MarkFlagRequired("office")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newOfficeDefaultCmd(app *App) *cobra.Command {
	var officeID string

	cmd := &cobra.Command{
		Use:   "default [codes...]",
		Short: "Show or set the default discipline selection for new budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				active, err := app.Pricing.GetDefaultSelection(ctx, officeID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(active, " "))
				return nil
			}

			codes := make([]string, len(args))
			for i, arg := range args {
				codes[i] = strings.ToUpper(arg)
			}
			if err := app.Pricing.SetDefaultSelection(ctx, officeID, codes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default selection for office %s: %s\n",
				officeID, strings.Join(codes, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&officeID, "office", "", "Office ID")
	_ = cmd.MarkFlagRequired("office")

	return cmd
}

func formatPricingTable(table *domain.PricingTable) string {
	var b strings.Builder

	b.WriteString(formatter.Header("Office " + table.OfficeID))
	b.WriteString("\n")

	codes := make([]string, 0, len(table.Disciplines))
	for code := range table.Disciplines {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		e := table.Disciplines[code]
		basis := formatter.Money(e.BaseValue)
		if e.ValuePerArea > 0 {
			basis = formatter.Money(e.ValuePerArea) + "/m²"
		}
		rows = append(rows, []string{
			formatter.ActiveIndicator(e.Active),
			code,
			basis,
			formatter.Money(e.HourlyRate) + "/h",
			fmt.Sprintf("%dh", e.EstimatedHours),
		})
	}
	b.WriteString(formatter.RenderTable([]string{"", "Code", "Base", "Rate", "Est."}, rows))

	b.WriteString("\n")
	b.WriteString(formatter.Dim("Indirect: ") + fmt.Sprintf(
		"margin %s · overhead %s · tax %s · contingency %s · commission %s\n",
		formatter.Pct(table.Indirect.MarginPct),
		formatter.Pct(table.Indirect.OverheadPct),
		formatter.Pct(table.Indirect.TaxPct),
		formatter.Pct(table.Indirect.ContingencyPct),
		formatter.Pct(table.Indirect.CommissionPct)))
	b.WriteString(formatter.Dim("Commercial: ") + fmt.Sprintf(
		"max discount %s · minimum %s · installment surcharge %s\n",
		formatter.Pct(table.Commercial.MaxDiscountPct),
		formatter.Money(table.Commercial.MinimumProjectValue),
		formatter.Pct(table.Commercial.InstallmentSurchargePct)))

	return b.String()
}
