package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane"
	"github.com/etnz/okane/date"
	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	date   string
	txType string
	amount int64
	desc   string
	output string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction" }
func (*addCmd) Usage() string {
	return `okane add -date <YYYY-MM-DD> -type income|expense -amount <yen> -desc <text> [-o <file>]

  Adds a transaction with a freshly generated id and writes the ledger
  back, re-sorted by date.

Usage Examples:
# Record a salary.
$ okane add -date 2026-02-01 -type income -amount 300000 -desc salary
# Record the rent.
$ okane add -date 2026-02-01 -type expense -amount 80000 -desc rent
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Transaction date (YYYY-MM-DD).")
	f.StringVar(&c.txType, "type", "", "Transaction category (income or expense).")
	f.Int64Var(&c.amount, "amount", -1, "Amount in yen.")
	f.StringVar(&c.desc, "desc", "", "Description.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to the input file).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.date == "" || c.txType == "" || c.amount < 0 || c.desc == "" {
		fmt.Fprintln(os.Stderr, "Error: add wants -date, -type, -amount and -desc.")
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	t, err := okane.ParseTxType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	added, err := ledger.Add(okane.DefaultIDSource(), on, t, c.amount, c.desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	path, err := saveLedger(ledger, c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Added %s\n", renderer.Transaction(added))
	fmt.Printf("   Written to: %s\n", path)
	return subcommands.ExitSuccess
}
