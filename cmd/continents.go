package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type continentsCmd struct{}

func (*continentsCmd) Name() string     { return "continents" }
func (*continentsCmd) Synopsis() string { return "show property coverage per continent" }
func (*continentsCmd) Usage() string {
	return `atlas continents

  Tallies properties per continent and points at the gaps.
`
}

func (*continentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *continentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := LoadPropertyStore()
	printMarkdown(renderer.ContinentsMarkdown(atlas.NewContinentCoverage(store.Slice())))
	return subcommands.ExitSuccess
}
