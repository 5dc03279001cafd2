package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/evranch/atlas"
	"github.com/evranch/atlas/renderer"
	"github.com/google/subcommands"
)

// remindersCmd holds the flags for the 'reminders' subcommand.
type remindersCmd struct {
	date string
}

func (*remindersCmd) Name() string     { return "reminders" }
func (*remindersCmd) Synopsis() string { return "show friends needing a check-in" }
func (*remindersCmd) Usage() string {
	return `atlas reminders [-d <date>]

  Lists friends past the contact threshold, urgent ones flagged.
`
}

func (c *remindersCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "today", "Reference date for the report.")
}

func (c *remindersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := atlas.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	store := LoadFriendStore()
	printMarkdown(renderer.RemindersMarkdown(atlas.NewReminders(store.Slice(), on)))
	return subcommands.ExitSuccess
}
