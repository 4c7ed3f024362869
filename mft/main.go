// Command mft tracks a mutual fund portfolio from the command line.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fundfolio/fundfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits when invoked by the shell.
func completion() {
	globalFlags := map[string]complete.Predictor{
		"store": predict.Files("*.db"),
		"user":  predict.Nothing,
		"v":     predict.Nothing,
	}
	deltas := map[string]complete.Predictor{"deltas": predict.Nothing}

	c := &complete.Command{
		Flags: globalFlags,
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"scheme": predict.Nothing,
				"isin":   predict.Nothing,
				"side":   predict.Set{"purchase", "sell"},
				"d":      predict.Nothing,
				"units":  predict.Nothing,
				"price":  predict.Nothing,
			}},
			"import":  {Flags: map[string]complete.Predictor{"f": predict.Files("*.jsonl")}},
			"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")}},
			"summary": {Flags: deltas},
			"schemes": {Flags: map[string]complete.Predictor{"days": predict.Nothing}},
			"changes": {Flags: deltas},
			"history": {Flags: map[string]complete.Predictor{
				"s": predict.Nothing,
				"p": predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"},
			}},
			"names":  {Flags: map[string]complete.Predictor{"refresh": predict.Nothing}},
			"assist": {},
		},
	}
	c.Complete("mft")
}
