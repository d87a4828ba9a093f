package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psahay/finplan"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the data files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fpl fmt

  Validates and formats the ledger and goals files. Transactions are parsed,
  validated, sorted by date and written back in a canonical JSONL format.
  Goals are rewritten the same way.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	goals, err := DecodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding goals %q: %v\n", *goalsFile, err)
		return subcommands.ExitFailure
	}
	if len(goals) > 0 {
		if err := SaveGoals(goals); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving goals %q: %v\n", *goalsFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Fprintf(os.Stderr, "✅ Formatted %q and %q.\n", *ledgerFile, *goalsFile)
	return subcommands.ExitSuccess
}

// saveLedger rewrites the ledger file in canonical form.
func saveLedger(ledger *finplan.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return finplan.EncodeLedger(f, ledger)
}
