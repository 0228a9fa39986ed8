package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
)

type compressCmd struct {
	keepMonths int
	output     string
}

func (*compressCmd) Name() string     { return "compress" }
func (*compressCmd) Synopsis() string { return "collapse old transactions into monthly totals" }
func (*compressCmd) Usage() string {
	return `okane compress [-keep-months <n>] [-o <file>]

  Replaces transactions older than the keep window with one income
  total and one expense total per month. This is a lossy, one-way
  archival operation; totals and balances are preserved. By default the
  result is written next to the input as <file>-compressed.json.
`
}

func (c *compressCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.keepMonths, "keep-months", 3, "How many recent months keep full detail.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to <file>-compressed.json).")
}

func (c *compressCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.keepMonths < 0 {
		fmt.Fprintln(os.Stderr, "Error: -keep-months must not be negative.")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	compressed := ledger.Compress(c.keepMonths, time.Now())

	output := c.output
	if output == "" {
		output = strings.TrimSuffix(ledgerPath(), ".json") + "-compressed.json"
	}
	path, err := saveLedger(compressed, output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Compressed the ledger\n")
	fmt.Printf("   %d transactions → %d\n", len(ledger.Transactions), len(compressed.Transactions))
	fmt.Printf("   Written to: %s\n", path)
	return subcommands.ExitSuccess
}
