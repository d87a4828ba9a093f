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

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct {
	date string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "display the derived progress of every savings goal" }
func (*goalsCmd) Usage() string {
	return `fpl goals [-d <date>]

  Displays every goal with its percentage complete, required monthly
  contribution, projected completion date and on-track flag, all derived
  as of the given date.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finplan.Today().String(), "Date the progress is derived for.")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := finplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	goals, err := DecodeGoalsFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding goals %q: %v\n", *goalsFile, err)
		return subcommands.ExitFailure
	}
	if len(goals) == 0 {
		fmt.Println("No goals defined.")
		return subcommands.ExitSuccess
	}

	progress := make([]*finplan.GoalProgress, 0, len(goals))
	for _, g := range goals {
		progress = append(progress, finplan.NewGoalProgress(g, on))
	}

	printMarkdown(renderer.GoalsMarkdown(on, progress))
	return subcommands.ExitSuccess
}
