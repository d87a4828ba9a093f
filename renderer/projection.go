package renderer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/psahay/finplan"
)

// SIPMarkdown renders the 3/5/10-year future-value table per holding.
func SIPMarkdown(rows []finplan.SIPRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# SIP Projections\n\n")
	if len(rows) == 0 {
		fmt.Fprintf(&b, "No holdings.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Holding | Current | Monthly | 3y | 5y | 10y |\n")
	fmt.Fprintf(&b, "|---|---:|---:|---:|---:|---:|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.Name, row.Current, row.Monthly, row.In3y, row.In5y, row.In10y)
	}
	return b.String()
}

// TrajectoryMarkdown renders the invested-versus-projected net-worth lines.
func TrajectoryMarkdown(points []finplan.TrajectoryPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Net Worth Trajectory\n\n")
	fmt.Fprintf(&b, "| Year | Invested | Projected |\n|---:|---:|---:|\n")
	for _, p := range points {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", p.Year, p.Invested, p.Projected)
	}
	return b.String()
}

// PortfolioMarkdown renders the stacked per-asset-class projection.
func PortfolioMarkdown(points []finplan.PortfolioPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Projection\n\n")
	if len(points) == 0 {
		fmt.Fprintf(&b, "No asset classes.\n")
		return b.String()
	}

	classes := slices.Collect(maps.Keys(points[0].Classes))
	slices.Sort(classes)

	fmt.Fprintf(&b, "| Year |")
	for _, c := range classes {
		fmt.Fprintf(&b, " %s |", c)
	}
	fmt.Fprintf(&b, " Total |\n|---:|")
	for range classes {
		fmt.Fprintf(&b, "---:|")
	}
	fmt.Fprintf(&b, "---:|\n")

	for _, p := range points {
		fmt.Fprintf(&b, "| %d |", p.Year)
		for _, c := range classes {
			fmt.Fprintf(&b, " %s |", p.Classes[c])
		}
		fmt.Fprintf(&b, " %s |\n", p.Total)
	}
	return b.String()
}
