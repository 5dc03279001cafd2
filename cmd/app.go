// Package cmd implements the CLI application to manage a friend network and
// a property empire.
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/evranch/atlas"
	"github.com/evranch/atlas/geo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addFriendCmd{}, "friends")
	c.Register(&friendsCmd{}, "friends")
	c.Register(&contactedCmd{}, "friends")
	c.Register(&removeFriendCmd{}, "friends")

	c.Register(&addPropertyCmd{}, "properties")
	c.Register(&propertiesCmd{}, "properties")
	c.Register(&removePropertyCmd{}, "properties")

	c.Register(&remindersCmd{}, "reports")
	c.Register(&travelCmd{}, "reports")
	c.Register(&routeCmd{}, "reports")
	c.Register(&continentsCmd{}, "reports")
	c.Register(&linksCmd{}, "reports")
	c.Register(&investCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&seedCmd{}, "data")

	c.Register(&assistCmd{}, "misc")
	c.Register(&topicCmd{}, "misc")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// LoadFriendStore opens the friend collection from the configured data
// directory. A missing or unreadable file yields an empty store.
func LoadFriendStore() *atlas.Store[atlas.Friend] {
	return atlas.LoadFriends(appConfig().DataDir)
}

// LoadPropertyStore opens the property collection from the configured data
// directory. A missing or unreadable file yields an empty store.
func LoadPropertyStore() *atlas.Store[atlas.Property] {
	return atlas.LoadProperties(appConfig().DataDir)
}

// Geocoder returns the location resolver against the configured endpoint.
func Geocoder() *geo.Geocoder {
	return geo.New(appConfig().GeocoderURL)
}

// Currency returns the display currency for property costs.
func Currency() string {
	return appConfig().Currency
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks a yes/no question on stderr and reads the answer from stdin.
// Only an explicit "y" or "yes" counts as yes.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
