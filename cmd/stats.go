package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "show the network dashboard" }
func (*statsCmd) Usage() string {
	return `atlas stats

  Headline counts: friends, countries, places to stay, overdue check-ins.
`
}

func (*statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := LoadFriendStore()
	printMarkdown(renderer.StatsMarkdown(atlas.NewStats(store.Slice(), atlas.Today())))
	return subcommands.ExitSuccess
}
