package renderer

import (
	"fmt"
	"strings"

	"github.com/psahay/finplan"
)

// FireMarkdown renders the financial-independence report.
func FireMarkdown(p *finplan.FireProjection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# FIRE\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Annual expenses | %s |\n", p.AnnualExpenses)
	fmt.Fprintf(&b, "| FIRE number | %s |\n", p.FireNumber)
	fmt.Fprintf(&b, "| Current net worth | %s |\n", p.CurrentNetWorth)
	fmt.Fprintf(&b, "| Progress | %s |\n", p.ProgressPercent)
	fmt.Fprintf(&b, "| Monthly contribution | %s |\n", p.MonthlyRequired)
	fmt.Fprintf(&b, "| Years to FIRE | %s |\n", yearsLabel(p.YearsToFIRE))

	if len(p.ProjectionData) > 1 {
		fmt.Fprintf(&b, "\n## Projection\n\n")
		fmt.Fprintf(&b, "| Year | Net Worth | Target |\n|---:|---:|---:|\n")
		for _, fp := range p.ProjectionData {
			fmt.Fprintf(&b, "| %d | %s | %s |\n", fp.Year, fp.NetWorth, fp.FireTarget)
		}
	}
	return b.String()
}

func yearsLabel(years float64) string {
	if years >= finplan.YearsCap {
		return fmt.Sprintf("%d+", finplan.YearsCap)
	}
	return fmt.Sprintf("%.1f", years)
}
