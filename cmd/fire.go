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

// fireCmd holds the flags for the 'fire' subcommand.
type fireCmd struct {
	expenses float64
	networth float64
	surplus  float64
	currency string
}

func (*fireCmd) Name() string     { return "fire" }
func (*fireCmd) Synopsis() string { return "compute the financial-independence picture" }
func (*fireCmd) Usage() string {
	return `fpl fire [-expenses <amount>] [-networth <amount>] [-surplus <amount>]

  Computes the FIRE number (annual expenses times the multiple implied by the
  safe withdrawal rate), the progress toward it, and the years the current
  surplus takes to close the gap at the blended portfolio rate.

  When a flag is omitted the value is derived from the ledger over the
  trailing twelve months: expenses as the settled expense total, net worth as
  the running balance, surplus as income minus expenses over twelve.
`
}

func (c *fireCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.expenses, "expenses", 0, "Annual expenses baseline. Defaults to the trailing twelve months of the ledger.")
	f.Float64Var(&c.networth, "networth", 0, "Current net worth. Defaults to the ledger balance.")
	f.Float64Var(&c.surplus, "surplus", 0, "Monthly surplus to invest. Defaults to the trailing average of income minus expenses.")
	f.StringVar(&c.currency, "cur", finplan.DefaultCurrency, "Currency of the amounts.")
}

func (c *fireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	today := finplan.Today()
	trailing := finplan.NewReview(ledger, finplan.NewRange(today.AddMonth(-12).Add(1), today))

	expenses := finplan.M(c.expenses, c.currency)
	if expenses.IsZero() {
		expenses = trailing.Expenses()
	}
	networth := finplan.M(c.networth, c.currency)
	if networth.IsZero() {
		networth = ledger.BalanceAt(today)
	}
	surplus := finplan.M(c.surplus, c.currency)
	if surplus.IsZero() {
		surplus = trailing.Income().Sub(trailing.Expenses()).DivInt(12)
	}

	p := finplan.NewFireProjection(expenses, networth, surplus, Assumptions())
	printMarkdown(renderer.FireMarkdown(p))
	return subcommands.ExitSuccess
}
