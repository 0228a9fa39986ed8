package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane/date"
	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

// reportCmd is the default invocation: a six month forecast followed by
// a danger scan at threshold zero.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "show the default forecast and danger report" }
func (*reportCmd) Usage() string {
	return `okane report

  Shows the 6-month balance forecast followed by a scan for days where
  the balance drops to zero or below. This is also what running okane
  without arguments does.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	today := date.Today()
	printMarkdown(renderer.ForecastMarkdown(ledger.Forecast(6, today)))
	printMarkdown(renderer.DangerMarkdown(ledger.DangerPoints(0)))
	return subcommands.ExitSuccess
}
