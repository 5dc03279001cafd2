package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export friends to a backup file" }
func (*exportCmd) Usage() string {
	return `atlas export [-o <file>]

  Writes the friend collection to a dated JSON backup file, or to stdout
  with -o -.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to atlas-export-<date>.json, \"-\" for stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	friends := LoadFriendStore().Slice()

	if c.output == "-" {
		if err := atlas.ExportFriends(os.Stdout, friends, time.Now()); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = atlas.ExportFileName(atlas.Today())
	}
	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := atlas.ExportFriends(out, friends, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d friends to %s\n", len(friends), name)
	return subcommands.ExitSuccess
}
