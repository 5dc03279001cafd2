package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
)

// addFriendCmd holds the flags for the 'add-friend' subcommand.
type addFriendCmd struct {
	name        string
	location    string
	lastContact string
	canStay     bool
	notes       string
}

func (*addFriendCmd) Name() string     { return "add-friend" }
func (*addFriendCmd) Synopsis() string { return "add a friend to the network" }
func (*addFriendCmd) Usage() string {
	return `atlas add-friend -name <name> -location <city, country> [-last <date>] [-stay] [-notes <text>]

  Adds a friend. The location is geocoded best effort: when the lookup
  fails the friend is still created with unresolved coordinates.
`
}

func (c *addFriendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Friend's name.")
	f.StringVar(&c.location, "location", "", "Where they live, like \"Lisbon, Portugal\".")
	f.StringVar(&c.lastContact, "last", "today", "When you last talked. See the user manual for supported date formats.")
	f.BoolVar(&c.canStay, "stay", false, "They can host you.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addFriendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.location == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -location are required")
		return subcommands.ExitUsageError
	}
	last, err := atlas.ParseDate(c.lastContact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	friend := atlas.Friend{
		Name:        c.name,
		Location:    c.location,
		Coordinates: Geocoder().Locate(c.location),
		LastContact: last,
		CanStay:     c.canStay,
		Notes:       c.notes,
	}

	stored, err := LoadFriendStore().Add(friend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding friend: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s in %s (%s)\n", stored.Name, stored.Location, stored.ID)
	return subcommands.ExitSuccess
}
