package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type travelCmd struct{}

func (*travelCmd) Name() string     { return "travel" }
func (*travelCmd) Synopsis() string { return "suggest countries with several friends" }
func (*travelCmd) Usage() string {
	return `atlas travel

  Groups friends by country and shows the countries worth a trip.
`
}

func (*travelCmd) SetFlags(f *flag.FlagSet) {}

func (c *travelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := LoadFriendStore()
	printMarkdown(renderer.TravelMarkdown(atlas.NewTravelSuggestions(store.Slice())))
	return subcommands.ExitSuccess
}
