package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type removePropertyCmd struct {
	yes bool
}

func (*removePropertyCmd) Name() string     { return "remove-property" }
func (*removePropertyCmd) Synopsis() string { return "remove a property from the empire" }
func (*removePropertyCmd) Usage() string {
	return `atlas remove-property [-y] <name-or-id>

  Removes a property, after confirmation.
`
}

func (c *removePropertyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *removePropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one property name or id")
		return subcommands.ExitUsageError
	}
	store := LoadPropertyStore()
	property, err := findProperty(store, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.yes && !confirm(fmt.Sprintf("Remove %s (%s)?", property.Name, property.Location)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	if err := store.Remove(property.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", property.Name)
	return subcommands.ExitSuccess
}
