package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane"
	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	output string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by id" }
func (*deleteCmd) Usage() string {
	return `okane delete <id> [-o <file>]

  Removes the transaction with the given id and writes the ledger back.
  Use "okane list -full-id" to find ids.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to the input file).")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: delete wants exactly one id argument.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	removed, err := ledger.Delete(id)
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

	fmt.Printf("✅ Deleted %s\n", renderer.Transaction(removed))
	fmt.Printf("   Written to: %s\n", path)
	return subcommands.ExitSuccess
}
