package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type investCmd struct{}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "rank the next properties to pursue" }
func (*investCmd) Usage() string {
	return `atlas invest

  Scores non-owned properties on climate, strategy, cost and friends
  nearby, and shows the top five.
`
}

func (*investCmd) SetFlags(f *flag.FlagSet) {}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	friends := LoadFriendStore().Slice()
	properties := LoadPropertyStore().Slice()
	printMarkdown(renderer.InvestMarkdown(atlas.NewInvestmentPriorities(friends, properties), Currency()))
	return subcommands.ExitSuccess
}
