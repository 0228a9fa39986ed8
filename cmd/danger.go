package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/okane/renderer"
	"github.com/google/subcommands"
)

type dangerCmd struct {
	threshold int64
}

func (*dangerCmd) Name() string     { return "danger" }
func (*dangerCmd) Synopsis() string { return "find days where the balance drops to the threshold" }
func (*dangerCmd) Usage() string {
	return `okane danger [-threshold <yen>]

  Scans the chronological balance history and lists every day whose
  end-of-day balance is at or below the threshold (0 by default).
`
}

func (c *dangerCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.threshold, "threshold", 0, "Danger threshold in yen.")
}

func (c *dangerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.DangerMarkdown(ledger.DangerPoints(c.threshold)))
	return subcommands.ExitSuccess
}
