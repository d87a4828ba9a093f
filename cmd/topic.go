package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/psahay/finplan/docs"
)

// topicCmd renders pages of the embedded user manual.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the user manual" }
func (*topicCmd) Usage() string {
	return `fpl topic [<topic>...]

  Shows manual pages. Without arguments the table of contents is shown;
  '*' prints the whole manual.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pages := f.Args()
	if len(pages) == 0 {
		pages = []string{"readme"}
	}

	md, err := docs.GetTopics(pages...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading manual: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
