package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
)

// contactedCmd holds the flags for the 'contacted' subcommand.
type contactedCmd struct {
	date string
	all  bool
}

func (*contactedCmd) Name() string     { return "contacted" }
func (*contactedCmd) Synopsis() string { return "record that you talked to a friend" }
func (*contactedCmd) Usage() string {
	return `atlas contacted [-d <date>] <name-or-id>
atlas contacted -all

  Updates the last-contact date. With -all, every friend past the soft
  threshold is marked contacted at once, after confirmation.
`
}

func (c *contactedCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "today", "Contact date. See the user manual for supported date formats.")
	f.BoolVar(&c.all, "all", false, "Mark every overdue friend as contacted.")
}

func (c *contactedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := atlas.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	store := LoadFriendStore()

	if c.all {
		return c.markAll(store, on)
	}

	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one friend name or id")
		return subcommands.ExitUsageError
	}
	friend, err := findFriend(store, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	err = store.Update(friend.ID, func(f *atlas.Friend) { f.LastContact = on })
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Marked %s as contacted on %s\n", friend.Name, on)
	return subcommands.ExitSuccess
}

func (c *contactedCmd) markAll(store *atlas.Store[atlas.Friend], on atlas.Date) subcommands.ExitStatus {
	overdue := 0
	for f := range store.All() {
		if atlas.Overdue(f, on) {
			overdue++
		}
	}
	if overdue == 0 {
		fmt.Println("No overdue friends to update.")
		return subcommands.ExitSuccess
	}
	if !confirm(fmt.Sprintf("Mark %d friends as contacted on %s?", overdue, on)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	touched, err := store.UpdateAll(
		func(f atlas.Friend) bool { return atlas.Overdue(f, on) },
		func(f *atlas.Friend) { f.LastContact = on },
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Marked %d friends as contacted on %s\n", touched, on)
	return subcommands.ExitSuccess
}
