// Package cmd implements the CLI application to track savings goals and
// long-horizon projections.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/psahay/finplan"
	"github.com/psahay/finplan/linkstore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")
	c.Register(&reviewCmd{}, "ledger")
	c.Register(&weeksCmd{}, "ledger")

	c.Register(&goalsCmd{}, "goals")
	c.Register(&suggestCmd{}, "goals")
	c.Register(&acceptCmd{}, "goals")
	c.Register(&dismissCmd{}, "goals")

	c.Register(&sipCmd{}, "projections")
	c.Register(&networthCmd{}, "projections")
	c.Register(&fireCmd{}, "projections")

	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var goalsFile = flag.String("goals-file", "goals.jsonl", "Path to the savings goals file (JSONL format)")
var storeFile = flag.String("store-file", "suggestions.db", "Path to the auto-link suggestion database")
var assumptionsFile = flag.String("assumptions-file", "assumptions.toml", "Path to the projection assumptions overrides")

// DecodeLedgerFile reads the app ledger file. A missing file is an empty
// ledger, not an error.
func DecodeLedgerFile() (*finplan.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if os.IsNotExist(err) {
		return finplan.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finplan.DecodeLedger(f)
}

// DecodeGoalsFile reads the app goals file. A missing file means no goals.
func DecodeGoalsFile() ([]*finplan.SavingsGoal, error) {
	f, err := os.Open(*goalsFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return finplan.DecodeGoals(f)
}

// SaveGoals rewrites the goals file in canonical form.
func SaveGoals(goals []*finplan.SavingsGoal) error {
	f, err := os.Create(*goalsFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return finplan.EncodeGoals(f, goals)
}

// OpenStore opens the suggestion-state database.
func OpenStore() (*linkstore.Store, error) {
	return linkstore.Open(*storeFile)
}

// Assumptions loads the projection assumptions, with TOML overrides applied
// when the assumptions file exists.
func Assumptions() finplan.Assumptions {
	a, err := finplan.LoadAssumptions(*assumptionsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return finplan.DefaultAssumptions()
	}
	return a
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the terminal renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
