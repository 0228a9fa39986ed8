package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `okane fmt [-o <file>]

  Validates and formats the ledger file. This command reads all
  transactions, validates them, sorts them by date, and writes the
  ledger back in a canonical indented JSON form.

Usage Examples:
# Rewrite the default ledger file in place.
$ okane fmt
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to the input file).")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger.Normalize()

	path, err := saveLedger(ledger, c.output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Formatted %d transactions into %s\n", len(ledger.Transactions), path)
	return subcommands.ExitSuccess
}
