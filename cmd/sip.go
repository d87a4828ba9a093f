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

// sipCmd holds the flags for the 'sip' subcommand.
type sipCmd struct {
	holdingsFile string
	rows         string
	name         string
	symbol       string
	value        string
	invested     string
	class        string
	currency     string
}

func (*sipCmd) Name() string     { return "sip" }
func (*sipCmd) Synopsis() string { return "project holdings at 3, 5 and 10 year horizons" }
func (*sipCmd) Usage() string {
	return `fpl sip -holdings <file> [-rows <jsonpath>] [-value <jsonpath>] ...

  Imports position snapshots from a broker JSON export and displays their
  future value at 3, 5 and 10 years using the equity assumption rate.
  Brokers disagree on export shapes, so the row and field locations are
  given as jsonpath expressions relative to the export root and to each
  row respectively.
`
}

func (c *sipCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdingsFile, "holdings", "holdings.json", "Path to the broker holdings JSON export.")
	f.StringVar(&c.rows, "rows", "$.holdings", "Jsonpath selecting the array of positions.")
	f.StringVar(&c.name, "name", "$.name", "Jsonpath of the position name, relative to a row.")
	f.StringVar(&c.symbol, "symbol", "$.symbol", "Jsonpath of the position symbol, relative to a row.")
	f.StringVar(&c.value, "value", "$.currentValue", "Jsonpath of the current value, relative to a row.")
	f.StringVar(&c.invested, "invested", "$.investedValue", "Jsonpath of the invested value, relative to a row.")
	f.StringVar(&c.class, "class", "", "Jsonpath of the asset class, relative to a row. Empty defaults every row to stocks.")
	f.StringVar(&c.currency, "cur", finplan.DefaultCurrency, "Currency of the export's amounts.")
}

func (c *sipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := os.Open(c.holdingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening holdings export %q: %v\n", c.holdingsFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	spec := finplan.HoldingPathSpec{
		Rows:     c.rows,
		Name:     c.name,
		Symbol:   c.symbol,
		Value:    c.value,
		Invested: c.invested,
		Class:    c.class,
	}
	holdings, err := finplan.ImportHoldings(file, spec, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	a := Assumptions()
	printMarkdown(renderer.SIPMarkdown(finplan.SIPTable(holdings, a.EquityReturn)))
	return subcommands.ExitSuccess
}
