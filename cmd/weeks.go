package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// weeksCmd holds the flags for the 'weeks' subcommand.
type weeksCmd struct{}

func (*weeksCmd) Name() string     { return "weeks" }
func (*weeksCmd) Synopsis() string { return "list the ISO weeks spanned by the ledger" }
func (*weeksCmd) Usage() string {
	return `fpl weeks

  Lists the distinct ISO weeks covered by the ledger, oldest first, with
  their date ranges. Useful to pick a week for 'fpl review -p weekly'.
`
}

func (c *weeksCmd) SetFlags(f *flag.FlagSet) {}

func (c *weeksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	for _, w := range ledger.AvailableWeeks() {
		fmt.Printf("%s  %s .. %s\n", w, w.Start(), w.End())
	}
	return subcommands.ExitSuccess
}
