package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/coinfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"list":  {},
			"add":   {},
			"topup": {},
		},
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
		},
	}
	completion.Complete("coinfolio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
