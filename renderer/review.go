package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/psahay/finplan"
)

// ReviewMarkdown renders a period review: opening and closing balances, net
// flow, the per-category breakdown and any flagged anomalies.
func ReviewMarkdown(r *finplan.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Review %s\n\n", r.Range().Identifier())
	fmt.Fprintf(&b, "| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Opening balance | %s |\n", r.Opening())
	fmt.Fprintf(&b, "| Income | %s |\n", r.Income())
	fmt.Fprintf(&b, "| Expenses | %s |\n", r.Expenses())
	fmt.Fprintf(&b, "| Net flow | %s |\n", r.NetFlow().SignedString())
	fmt.Fprintf(&b, "| Closing balance | %s |\n", r.Closing())

	ConditionalBlock(&b, func(w io.Writer) bool {
		breakdown := r.CategoryBreakdown()
		if len(breakdown) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## By Category\n\n")
		fmt.Fprintf(w, "| Category | Total |\n|---|---:|\n")
		for _, ct := range breakdown {
			name := ct.Category
			if name == "" {
				name = "(uncategorized)"
			}
			fmt.Fprintf(w, "| %s | %s |\n", name, ct.Total.SignedString())
		}
		return true
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		anomalies := r.Anomalies()
		if len(anomalies) == 0 {
			return false
		}
		fmt.Fprintf(w, "\n## Anomalies\n\n")
		for _, a := range anomalies {
			fmt.Fprintf(w, "- %s: %s on %s", a.Kind, a.Amount, a.Date)
			if a.Detail != "" {
				fmt.Fprintf(w, " (%s)", a.Detail)
			}
			fmt.Fprintf(w, "\n")
		}
		return true
	})
	return b.String()
}
