package renderer

import (
	"fmt"
	"strings"

	"github.com/psahay/finplan"
)

// SuggestionsMarkdown renders auto-link suggestions grouped as one table.
func SuggestionsMarkdown(suggestions []finplan.Suggestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Auto-Link Suggestions\n\n")
	if len(suggestions) == 0 {
		fmt.Fprintf(&b, "Nothing to link.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "| Goal | Date | Amount | Description | Reason |\n")
	fmt.Fprintf(&b, "|---|---|---:|---|---|\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			s.GoalName, s.TxDate, s.Amount, s.TxDesc, s.Reason)
	}
	return b.String()
}
