package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/felipearaujo/orcato/internal/cli/formatter"
	"github.com/felipearaujo/orcato/internal/domain"
)

// orcatoHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func orcatoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validatePositiveFloat rejects input that does not parse to a number
// greater than zero.
func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

// validateOptionalPct rejects input outside [0, 100]; blank is allowed.
func validateOptionalPct(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

// runParamsForm collects project parameters through a huh form,
// pre-filled from params.
func runParamsForm(params *domain.ProjectParams) error {
	areaStr := ""
	if params.Area > 0 {
		areaStr = strconv.FormatFloat(params.Area, 'f', -1, 64)
	}
	discountStr := ""
	if params.DiscountPct > 0 {
		discountStr = strconv.FormatFloat(params.DiscountPct, 'f', -1, 64)
	}
	fastTrack := params.Urgency == domain.UrgencyFastTrack
	payment := string(params.PaymentPlan)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Built Area (m²)").
				Placeholder("200").
				Value(&areaStr).
				Validate(validatePositiveFloat),
			huh.NewSelect[string]().
				Title("Region").
				Options(
					huh.NewOption("Capital", "capital"),
					huh.NewOption("Metropolitan", "metropolitan"),
					huh.NewOption("Countryside", "countryside"),
					huh.NewOption("Coastal", "coastal"),
				).
				Value(&params.Region),
			huh.NewSelect[string]().
				Title("Construction Standard").
				Options(
					huh.NewOption("Economy", "economy"),
					huh.NewOption("Standard", "standard"),
					huh.NewOption("High", "high"),
					huh.NewOption("Luxury", "luxury"),
				).
				Value(&params.Standard),
			huh.NewSelect[string]().
				Title("Complexity").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
					huh.NewOption("Very High", "very_high"),
				).
				Value(&params.Complexity),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Payment Plan").
				Options(
					huh.NewOption("Cash", string(domain.PaymentCash)),
					huh.NewOption("50/50", string(domain.PaymentFiftyFifty)),
					huh.NewOption("Installments", string(domain.PaymentInstallment)),
				).
				Value(&payment),
			huh.NewInput().
				Title("Discount % (blank for none)").
				Value(&discountStr).
				Validate(validateOptionalPct),
			huh.NewConfirm().
				Title("Fast track?").
				Value(&fastTrack),
		),
	).WithTheme(orcatoHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	params.Area, _ = strconv.ParseFloat(areaStr, 64)
	if discountStr != "" {
		params.DiscountPct, _ = strconv.ParseFloat(discountStr, 64)
	}
	params.PaymentPlan = domain.PaymentPlan(payment)
	params.Urgency = domain.UrgencyNormal
	if fastTrack {
		params.Urgency = domain.UrgencyFastTrack
	}
	return nil
}
