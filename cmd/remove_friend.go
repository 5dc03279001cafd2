package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removeFriendCmd struct {
	yes bool
}

func (*removeFriendCmd) Name() string     { return "remove-friend" }
func (*removeFriendCmd) Synopsis() string { return "remove a friend from the network" }
func (*removeFriendCmd) Usage() string {
	return `atlas remove-friend [-y] <name-or-id>

  Removes a friend, after confirmation.
`
}

func (c *removeFriendCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *removeFriendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one friend name or id")
		return subcommands.ExitUsageError
	}
	store := LoadFriendStore()
	friend, err := findFriend(store, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.yes && !confirm(fmt.Sprintf("Remove %s (%s)?", friend.Name, friend.Location)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	if err := store.Remove(friend.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", friend.Name)
	return subcommands.ExitSuccess
}
