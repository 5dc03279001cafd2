package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type linksCmd struct{}

func (*linksCmd) Name() string     { return "links" }
func (*linksCmd) Synopsis() string { return "show friends living near properties" }
func (*linksCmd) Usage() string {
	return `atlas links

  Lists every property sharing a country with at least one friend.
`
}

func (*linksCmd) SetFlags(f *flag.FlagSet) {}

func (c *linksCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	friends := LoadFriendStore().Slice()
	properties := LoadPropertyStore().Slice()
	printMarkdown(renderer.LinksMarkdown(atlas.NewProximityLinks(friends, properties)))
	return subcommands.ExitSuccess
}
