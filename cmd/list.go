package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filterFlags
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions with the ledger summary" }
func (*listCmd) Usage() string {
	return `okane list [-type income|expense] [-from <date>] [-to <date>] [-min <yen>] [-max <yen>] [-limit <n>] [-full-id]

  Lists transactions newest first, capped to the limit, followed by the
  ledger totals.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	filter, err := c.Filter(f, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs := c.cap(ledger.Search(filter))
	printMarkdown(renderer.TransactionsMarkdown(txs, c.fullID))
	printMarkdown(renderer.SummaryMarkdown(ledger.Summarize()))
	return subcommands.ExitSuccess
}
