package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type routeCmd struct{}

func (*routeCmd) Name() string     { return "route" }
func (*routeCmd) Synopsis() string { return "plan a route through friends' cities" }
func (*routeCmd) Usage() string {
	return `atlas route <cities>

  Matches a comma-separated city list against friend locations, like:
  atlas route "berlin, stockholm, london"
`
}

func (*routeCmd) SetFlags(f *flag.FlagSet) {}

func (c *routeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cities := strings.Join(f.Args(), " ")
	store := LoadFriendStore()
	printMarkdown(renderer.RouteMarkdown(atlas.NewRoutePlan(store.Slice(), cities, atlas.Today())))
	return subcommands.ExitSuccess
}
