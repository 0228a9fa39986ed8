package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/okane/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Defaults may come from a local env file; a missing file is fine.
	godotenv.Load(".okane.env")

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Running okane with no arguments prints the monthly report.
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "report")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles the shell completion protocol. It returns
// immediately on a normal run, and exits the process when invoked by
// the shell completion hook.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.json"),
		},
	}
	completer.Complete("okane")
}
