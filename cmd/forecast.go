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

type forecastCmd struct {
	months int
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "forecast month-end balances" }
func (*forecastCmd) Usage() string {
	return `okane forecast [-n <months>]

  Projects the balance at the end of each of the next N months, using
  only transactions already present in the ledger, and lists each
  month's large items (¥100,000 and up).
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "n", 6, "How many months ahead to forecast.")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must not be negative.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ForecastMarkdown(ledger.Forecast(c.months, date.Today())))
	return subcommands.ExitSuccess
}
