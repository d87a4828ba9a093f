package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// acceptCmd holds the flags for the 'accept' subcommand.
type acceptCmd struct {
	goalID string
	txID   string
}

func (*acceptCmd) Name() string     { return "accept" }
func (*acceptCmd) Synopsis() string { return "accept an auto-link suggestion" }
func (*acceptCmd) Usage() string {
	return `fpl accept -g <goal-id> -tx <transaction-id>

  Records the transaction as a contribution of the goal and adds its amount
  to the goal's auto-linked total. Accepting the same pair again is a no-op:
  the amount is counted exactly once.
`
}

func (c *acceptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goalID, "g", "", "Goal id of the suggestion.")
	f.StringVar(&c.txID, "tx", "", "Transaction id of the suggestion.")
}

func (c *acceptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goalID == "" || c.txID == "" {
		fmt.Fprintln(os.Stderr, "Error: both -g and -tx are required")
		return subcommands.ExitUsageError
	}

	goals, err := DecodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding goals %q: %v\n", *goalsFile, err)
		return subcommands.ExitFailure
	}
	var found bool
	for _, g := range goals {
		if g.ID == c.goalID {
			found = true
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: unknown goal %q\n", c.goalID)
		return subcommands.ExitFailure
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening suggestion store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	lc, applied, err := store.Accept(c.goalID, c.txID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error accepting suggestion: %v\n", err)
		return subcommands.ExitFailure
	}
	if !applied {
		fmt.Println("Suggestion was already accepted, nothing to do.")
		return subcommands.ExitSuccess
	}

	for _, g := range goals {
		if g.ID == c.goalID {
			g.ApplyLink(lc)
		}
	}
	if err := SaveGoals(goals); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving goals %q: %v\n", *goalsFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Linked %s (%s) to goal %s\n", c.txID, lc.Amount, c.goalID)
	return subcommands.ExitSuccess
}
