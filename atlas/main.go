package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/evranch/atlas/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, installed with COMP_INSTALL=1 atlas.
	// Complete() exits when invoked by the shell for a completion.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"add-friend":      {Flags: map[string]complete.Predictor{"name": predict.Something, "location": predict.Something, "last": predict.Something, "stay": predict.Nothing, "notes": predict.Something}},
			"friends":         {},
			"contacted":       {Flags: map[string]complete.Predictor{"d": predict.Something, "all": predict.Nothing}},
			"remove-friend":   {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"add-property":    {Flags: map[string]complete.Predictor{"name": predict.Something, "location": predict.Something, "status": predict.Set{"dream", "research", "target", "negotiating", "owned"}, "cost": predict.Something, "type": predict.Set{"apartment", "house", "villa", "land", "island", "commercial"}, "climate": predict.Something, "strategic": predict.Something, "notes": predict.Something}},
			"properties":      {},
			"remove-property": {Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"reminders":       {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"travel":          {},
			"route":           {},
			"continents":      {},
			"links":           {},
			"invest":          {},
			"stats":           {},
			"export":          {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":          {Flags: map[string]complete.Predictor{"y": predict.Nothing}, Args: predict.Files("*.json")},
			"seed":            {},
			"assist":          {Flags: map[string]complete.Predictor{"ai": predict.Nothing, "stay": predict.Nothing}},
			"topic":           {Args: predict.Set{"readme", "friends", "properties", "reports", "data"}},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
	}
	completion.Complete("atlas")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
