// Package cmd implements the CLI application to analyze and edit an
// okane ledger file.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/okane"
	"github.com/google/subcommands"
)

// Environment variables honored by the application. They are also read
// from a .okane.env file when one is present in the working directory.
const (
	EnvLedgerFile = "OKANE_LEDGER_FILE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("f", "", "Path to the ledger JSON file (default $OKANE_LEDGER_FILE or okane.json)")

// Commands lists every subcommand; the main package registers them all.
var Commands = []subcommands.Command{
	&reportCmd{},
	&forecastCmd{},
	&checkCmd{},
	&dangerCmd{},
	&compressCmd{},
	&chartCmd{},
	&listCmd{},
	&searchCmd{},
	&addCmd{},
	&editCmd{},
	&deleteCmd{},
	&summaryCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
}

// ledgerPath resolves the ledger file, flag first, then environment.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if v := os.Getenv(EnvLedgerFile); v != "" {
		return v
	}
	return "okane.json"
}

// loadLedger reads the whole ledger for this invocation. A missing or
// malformed file is fatal for the command.
func loadLedger() (*okane.Ledger, error) {
	return okane.LoadLedger(ledgerPath())
}

// saveLedger writes the ledger back, to output when set, else in place.
// It returns the path written to.
func saveLedger(l *okane.Ledger, output string) (string, error) {
	path := output
	if path == "" {
		path = ledgerPath()
	}
	return path, okane.SaveLedger(path, l)
}

// printMarkdown renders markdown for the terminal through glamour,
// falling back to the raw text when the terminal renderer cannot be
// built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
