package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psahay/finplan"
	"github.com/psahay/finplan/renderer"
)

// reviewCmd holds the flags for the 'review' subcommand.
type reviewCmd struct {
	date   string
	period string
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "display a period review of the ledger" }
func (*reviewCmd) Usage() string {
	return `fpl review [-d <date>] [-p <period>]

  Displays opening and closing balances, net flow and the per-category
  breakdown for the period containing the given date. The opening balance
  is read the day before the period starts, so that closing minus opening
  always equals the net flow inside the period.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finplan.Today().String(), "Date inside the period to review.")
	f.StringVar(&c.period, "p", "monthly", "Period to review: daily, weekly, monthly or yearly.")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := finplan.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	review := finplan.NewReview(ledger, period.Range(on))
	printMarkdown(renderer.ReviewMarkdown(review))
	return subcommands.ExitSuccess
}
