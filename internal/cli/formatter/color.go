package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felipearaujo/orcato/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CategoryBadge returns a colored label for a discipline category.
func CategoryBadge(cat domain.DisciplineCategory) string {
	switch cat {
	case domain.CategoryEssential:
		return StyleGreen.Render("essential")
	case domain.CategorySpecialized:
		return StyleBlue.Render("specialized")
	case domain.CategoryComplementary:
		return StylePurple.Render("complementary")
	default:
		return StyleDim.Render(string(cat))
	}
}

// SourceBadge returns a colored label for a price source. Degraded and
// floor sources stand out so a quote built on them is hard to miss.
func SourceBadge(source domain.PriceSource) string {
	switch source {
	case domain.SourceBudgetOverride:
		return StylePurple.Render("override")
	case domain.SourceOfficeTable, domain.SourceOfficeArea:
		return StyleDim.Render("office")
	case domain.SourceCatalogDefault:
		return StyleYellow.Render("catalog")
	case domain.SourceCategoryFloor:
		return StyleRed.Render("floor")
	default:
		return StyleDim.Render(string(source))
	}
}

// ActiveIndicator returns the checkbox marker for a discipline row.
func ActiveIndicator(active bool) string {
	if active {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
