package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "load the demo friend set" }
func (*seedCmd) Usage() string {
	return `atlas seed

  Loads ten demo friends into an empty collection, to try the reports
  before adding real contacts. Refuses to touch a non-empty collection.
`
}

func (*seedCmd) SetFlags(f *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := LoadFriendStore()
	if store.Len() > 0 {
		fmt.Fprintf(os.Stderr, "Error: the collection already has %d friends, seed only fills an empty one\n", store.Len())
		return subcommands.ExitFailure
	}
	added, _, err := store.BulkMerge(atlas.StarterFriends())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Loaded %d demo friends\n", added)
	return subcommands.ExitSuccess
}
