package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/quickval/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares the command tree for shell completion. It is a no-op
// outside of a completion request.
func completion() {
	qv := &complete.Command{
		Sub: map[string]*complete.Command{
			"graham": {
				Flags: map[string]complete.Predictor{
					"eps":    predict.Something,
					"price":  predict.Something,
					"growth": predict.Something,
				},
			},
			"kelly": {
				Flags: map[string]complete.Predictor{
					"stats":    predict.Something,
					"returns":  predict.Something,
					"fraction": predict.Something,
					"json":     predict.Nothing,
				},
			},
			"topic": {
				Args: predict.Set{"readme", "graham", "kelly"},
			},
		},
	}
	qv.Complete("qv")
}
