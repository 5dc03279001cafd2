package cmd

import (
	"context"
	"flag"

	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

type propertiesCmd struct{}

func (*propertiesCmd) Name() string     { return "properties" }
func (*propertiesCmd) Synopsis() string { return "list all properties" }
func (*propertiesCmd) Usage() string {
	return `atlas properties

  Lists the property empire with status, cost and scores.
`
}

func (*propertiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *propertiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := LoadPropertyStore()
	printMarkdown(renderer.PropertiesMarkdown(store.Slice(), Currency()))
	return subcommands.ExitSuccess
}
