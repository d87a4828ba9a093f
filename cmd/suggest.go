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

// suggestCmd holds the flags for the 'suggest' subcommand.
type suggestCmd struct{}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "propose transactions to link to savings goals" }
func (*suggestCmd) Usage() string {
	return `fpl suggest

  Scans the ledger against each goal's linked categories and keywords and
  proposes contributions. Pairs already linked, accepted or dismissed are
  not proposed again. Use 'fpl accept' or 'fpl dismiss' to settle one.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {}

func (c *suggestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	goals, err := DecodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding goals %q: %v\n", *goalsFile, err)
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening suggestion store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	suggestions := finplan.MatchSuggestions(goals, ledger, store.Decided)
	for _, s := range suggestions {
		if err := store.Record(s); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording suggestion for %s: %v\n", s.TxID, err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.SuggestionsMarkdown(suggestions))
	if len(suggestions) > 0 {
		fmt.Printf("Settle with: fpl accept -g <goal-id> -tx <transaction-id>\n")
	}
	return subcommands.ExitSuccess
}
