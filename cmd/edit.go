package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane"
	"github.com/etnz/okane/date"
	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	date   string
	txType string
	amount int64
	desc   string
	output string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a transaction by id" }
func (*editCmd) Usage() string {
	return `okane edit <id> [-date <YYYY-MM-DD>] [-type income|expense] [-amount <yen>] [-desc <text>] [-o <file>]

  Applies the provided fields to the transaction with the given id and
  writes the ledger back, re-sorted. Only flags actually passed are
  applied: "-amount 0" sets the amount to zero, "-desc ''" clears the
  description. Use "okane list -full-id" to find ids.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "New transaction date (YYYY-MM-DD).")
	f.StringVar(&c.txType, "type", "", "New category (income or expense).")
	f.Int64Var(&c.amount, "amount", 0, "New amount in yen.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to the input file).")
}

// patch builds the partial update from the flags the user actually set.
func (c *editCmd) patch(f *flag.FlagSet) (okane.TxPatch, error) {
	var patch okane.TxPatch
	var err error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "date":
			var d date.Date
			if d, err = date.Parse(c.date); err == nil {
				patch.Date = &d
			}
		case "type":
			var t okane.TxType
			if t, err = okane.ParseTxType(c.txType); err == nil {
				patch.Type = &t
			}
		case "amount":
			patch.Amount = &c.amount
		case "desc":
			patch.Description = &c.desc
		}
	})
	return patch, err
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit wants exactly one id argument.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	patch, err := c.patch(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if patch.IsZero() {
		fmt.Fprintln(os.Stderr, "Error: edit wants at least one of -date, -type, -amount or -desc.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	edited, err := ledger.Edit(id, patch)
	if errors.Is(err, okane.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Transaction %q not found. Try okane list -full-id.\n", id)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	path, err := saveLedger(ledger, c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Edited %s\n", renderer.Transaction(edited))
	fmt.Printf("   Written to: %s\n", path)
	return subcommands.ExitSuccess
}
