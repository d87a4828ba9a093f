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

// networthCmd holds the flags for the 'networth' subcommand.
type networthCmd struct {
	years        int
	monthly      float64
	holdingsFile string
	rows         string
	value        string
	class        string
	currency     string
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "project the net-worth trajectory" }
func (*networthCmd) Usage() string {
	return `fpl networth [-years <n>] [-monthly <amount>] [-holdings <file>]

  Projects net worth year by year: the invested line accumulates
  contributions with no market return, the projected line compounds at the
  blended portfolio rate. With a holdings export, a stacked per-asset-class
  projection is shown as well, each class at its own rate.
`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 10, "Projection horizon in years.")
	f.Float64Var(&c.monthly, "monthly", 0, "Monthly contribution. Defaults to the ledger's average monthly net flow.")
	f.StringVar(&c.holdingsFile, "holdings", "", "Optional broker holdings JSON export for the per-class projection.")
	f.StringVar(&c.rows, "rows", "$.holdings", "Jsonpath selecting the array of positions.")
	f.StringVar(&c.value, "value", "$.currentValue", "Jsonpath of the current value, relative to a row.")
	f.StringVar(&c.class, "class", "$.class", "Jsonpath of the asset class, relative to a row.")
	f.StringVar(&c.currency, "cur", finplan.DefaultCurrency, "Currency of the export's amounts.")
}

func (c *networthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	a := Assumptions()
	today := finplan.Today()
	current := ledger.BalanceAt(today)
	monthly := finplan.M(c.monthly, c.currency)
	if monthly.IsZero() {
		monthly = averageMonthlyFlow(ledger, today)
	}

	printMarkdown(renderer.TrajectoryMarkdown(
		finplan.NetWorthTrajectory(current, monthly, a.PortfolioReturn, c.years)))

	if c.holdingsFile != "" {
		file, err := os.Open(c.holdingsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening holdings export %q: %v\n", c.holdingsFile, err)
			return subcommands.ExitFailure
		}
		defer file.Close()

		spec := finplan.HoldingPathSpec{Rows: c.rows, Value: c.value, Class: c.class}
		holdings, err := finplan.ImportHoldings(file, spec, c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing holdings: %v\n", err)
			return subcommands.ExitFailure
		}
		classes := finplan.Classes(holdings, a)
		printMarkdown(renderer.PortfolioMarkdown(finplan.PortfolioSeries(classes, c.years)))
	}
	return subcommands.ExitSuccess
}

// averageMonthlyFlow derives a monthly contribution from the trailing twelve
// months of the ledger.
func averageMonthlyFlow(ledger *finplan.Ledger, today finplan.Date) finplan.Money {
	flow := ledger.NetFlow(finplan.NewRange(today.AddMonth(-12).Add(1), today))
	if flow.IsNegative() {
		return finplan.M(0, flow.Currency())
	}
	return flow.DivInt(12)
}
