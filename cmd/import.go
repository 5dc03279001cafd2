package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import friends from a backup file" }
func (*importCmd) Usage() string {
	return `atlas import [-y] <file>

  Merges a backup into the friend collection. Friends already present
  (same name and location, case-insensitive) are skipped.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Skip the confirmation prompt.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	incoming, invalid, err := atlas.ImportFriends(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading backup: %v\n", err)
		return subcommands.ExitFailure
	}
	if invalid > 0 {
		fmt.Fprintf(os.Stderr, "Warning: skipped %d records missing a name or location\n", invalid)
	}
	if len(incoming) == 0 {
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
	}

	if !c.yes && !confirm(fmt.Sprintf("Import %d friends from %s?", len(incoming), f.Arg(0))) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	added, skipped, err := LoadFriendStore().BulkMerge(incoming)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d friends, skipped %d duplicates\n", added, skipped)
	return subcommands.ExitSuccess
}
