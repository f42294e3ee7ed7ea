package formatter

import (
	"fmt"
	"strings"

	"github.com/felipearaujo/orcato/internal/contract"
	"github.com/felipearaujo/orcato/internal/domain"
)

// FormatBudget renders the full budget breakdown: one row per active
// discipline, then the subtotal, indirect cost and final value.
func FormatBudget(snap contract.BudgetSnapshot) string {
	var b strings.Builder

	b.WriteString(Header("Budget " + snap.BudgetID))
	b.WriteString("\n")
	b.WriteString(formatParams(snap.Params))
	b.WriteString("\n\n")

	if snap.Degraded {
		b.WriteString(StyleYellow.Render("! office pricing not configured, using catalog defaults"))
		b.WriteString("\n\n")
	}

	rows := make([][]string, 0, len(snap.Active))
	for _, d := range snap.Active {
		line := snap.Result.Lines[d.Code]
		rows = append(rows, []string{
			d.Name,
			CategoryBadge(d.Category),
			Money(line.Base),
			Money(line.Total),
			SourceBadge(line.Source),
		})
	}
	b.WriteString(RenderTable(
		[]string{"Discipline", "Category", "Base", "Total", "Source"}, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Subtotal:"), Money(snap.Result.Subtotal)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Indirect costs:"), Money(snap.Result.IndirectCostTotal)))
	if snap.Params.DiscountPct > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Discount:"), Pct(snap.Params.DiscountPct)))
	}
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Total:"), StyleGreen.Render(Money(snap.Result.Total))))

	return b.String()
}

// FormatDisciplineList renders the catalog with activation state for a
// budget, including dependency hints.
func FormatDisciplineList(all []domain.Discipline, isActive func(code string) bool) string {
	rows := make([][]string, 0, len(all))
	for _, d := range all {
		deps := Dim("-")
		if len(d.Dependencies) > 0 {
			deps = Dim(strings.Join(d.Dependencies, ", "))
		}
		rows = append(rows, []string{
			ActiveIndicator(isActive(d.Code)),
			d.Code,
			d.Name,
			CategoryBadge(d.Category),
			deps,
		})
	}
	return RenderTable([]string{"", "Code", "Discipline", "Category", "Requires"}, rows)
}

func formatParams(p domain.ProjectParams) string {
	parts := []string{
		fmt.Sprintf("%.0fm²", p.Area),
		p.Region,
		p.Standard,
		p.Complexity,
		string(p.PaymentPlan),
	}
	if p.Urgency == domain.UrgencyFastTrack {
		parts = append(parts, StyleYellow.Render("fast track"))
	}
	return Dim(strings.Join(parts, " · "))
}
