package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct {
	filterFlags
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search transactions by keyword and filters" }
func (*searchCmd) Usage() string {
	return `okane search <keyword> [-type income|expense] [-from <date>] [-to <date>] [-min <yen>] [-max <yen>] [-limit <n>] [-full-id]

  Lists the transactions whose description contains the keyword
  (case-insensitive), combined with the other filters, newest first.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: search wants exactly one keyword argument.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter, err := c.Filter(f, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.TransactionsMarkdown(c.cap(ledger.Search(filter)), c.fullID))
	return subcommands.ExitSuccess
}
