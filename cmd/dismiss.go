package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// dismissCmd holds the flags for the 'dismiss' subcommand.
type dismissCmd struct {
	goalID string
	txID   string
}

func (*dismissCmd) Name() string     { return "dismiss" }
func (*dismissCmd) Synopsis() string { return "dismiss an auto-link suggestion" }
func (*dismissCmd) Usage() string {
	return `fpl dismiss -g <goal-id> -tx <transaction-id>

  Permanently suppresses the suggestion: the pair is never proposed again.
  Other goals may still receive suggestions for the same transaction.
`
}

func (c *dismissCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goalID, "g", "", "Goal id of the suggestion.")
	f.StringVar(&c.txID, "tx", "", "Transaction id of the suggestion.")
}

func (c *dismissCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goalID == "" || c.txID == "" {
		fmt.Fprintln(os.Stderr, "Error: both -g and -tx are required")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening suggestion store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := store.Dismiss(c.goalID, c.txID); err != nil {
		fmt.Fprintf(os.Stderr, "Error dismissing suggestion: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Dismissed suggestion %s for goal %s\n", c.txID, c.goalID)
	return subcommands.ExitSuccess
}
