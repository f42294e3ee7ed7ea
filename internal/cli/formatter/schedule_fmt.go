package formatter

import (
	"fmt"
	"strings"

	"github.com/felipearaujo/orcato/internal/domain"
)

// FormatSchedule renders the phase plan as a table followed by the
// deliverables of each phase.
func FormatSchedule(phases []domain.Phase) string {
	var b strings.Builder

	b.WriteString(Header("Delivery Schedule"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(phases))
	totalWeeks := 0
	for _, p := range phases {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Order),
			p.Name,
			fmt.Sprintf("wk %d-%d", p.StartWeek+1, p.StartWeek+p.DurationWeeks),
			fmt.Sprintf("%dw", p.DurationWeeks),
			Money(p.Value),
			Pct(p.PercentOfTotal),
			Dim(p.ResponsibleRole),
		})
		totalWeeks += p.DurationWeeks
	}
	b.WriteString(RenderTable(
		[]string{"#", "Phase", "Weeks", "Dur", "Value", "%", "Role"}, rows))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d weeks\n", Dim("Total duration:"), totalWeeks))

	for _, p := range phases {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render(p.Name))
		b.WriteString("\n")
		for _, item := range p.Deliverables {
			b.WriteString("  " + Dim("•") + " " + item + "\n")
		}
	}

	return b.String()
}
