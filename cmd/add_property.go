package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/evranch/atlas"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addPropertyCmd holds the flags for the 'add-property' subcommand.
type addPropertyCmd struct {
	name      string
	location  string
	status    string
	cost      string
	ptype     string
	climate   int
	strategic int
	notes     string
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "add a property to the empire" }
func (*addPropertyCmd) Usage() string {
	return `atlas add-property -name <name> -location <city, country> [-status <status>] [-cost <amount>] [-type <type>] [-climate 0-5] [-strategic 0-5] [-notes <text>]

  Adds a property. Status is one of dream, research, target, negotiating,
  owned. Type is one of apartment, house, villa, land, island, commercial.
`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Property name.")
	f.StringVar(&c.location, "location", "", "Where it is, like \"Faro, Portugal\".")
	f.StringVar(&c.status, "status", "dream", "Pipeline status.")
	f.StringVar(&c.cost, "cost", "0", "Estimated cost, plain number.")
	f.StringVar(&c.ptype, "type", "", "Property type.")
	f.IntVar(&c.climate, "climate", 0, "Climate score, 0 to 5.")
	f.IntVar(&c.strategic, "strategic", 0, "Strategic score, 0 to 5.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
}

func (c *addPropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status, err := atlas.ParseStatus(c.status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost %q: %v\n", c.cost, err)
		return subcommands.ExitUsageError
	}

	property := atlas.Property{
		Name:        c.name,
		Location:    c.location,
		Coordinates: Geocoder().Locate(c.location),
		Status:      status,
		Cost:        cost,
		Type:        atlas.PropertyType(c.ptype),
		Climate:     c.climate,
		Strategic:   c.strategic,
		Notes:       c.notes,
		DateAdded:   time.Now(),
	}
	if err := property.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	stored, err := LoadPropertyStore().Add(property)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding property: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s in %s (%s)\n", stored.Name, stored.Location, stored.ID)
	return subcommands.ExitSuccess
}
