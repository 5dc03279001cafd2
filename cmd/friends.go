package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type friendsCmd struct{}

func (*friendsCmd) Name() string     { return "friends" }
func (*friendsCmd) Synopsis() string { return "list all friends" }
func (*friendsCmd) Usage() string {
	return `atlas friends

  Lists the whole network with contact status.
`
}

func (*friendsCmd) SetFlags(f *flag.FlagSet) {}

func (c *friendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := LoadFriendStore()
	printMarkdown(renderer.FriendsMarkdown(store.Slice(), atlas.Today()))
	return subcommands.ExitSuccess
}
