package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/okane/date"
	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	date string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check whether a hypothetical expense is affordable" }
func (*checkCmd) Usage() string {
	return `okane check [-d <date>] <amount>

  Reports the balance before and after spending the given amount on the
  given date (today by default), along with the next scheduled expenses.
  The ledger is not modified.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "The date of the hypothetical expense (YYYY-MM-DD, defaults to today).")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: check wants exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	amount, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err != nil || amount < 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	on := date.Today()
	if c.date != "" {
		if on, err = date.Parse(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AffordabilityMarkdown(ledger.CheckAffordability(amount, on)))
	return subcommands.ExitSuccess
}
