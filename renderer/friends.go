package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// FriendsMarkdown renders the friend collection as a table, most useful
// columns first.
func FriendsMarkdown(friends []atlas.Friend, on atlas.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Friends")
	if len(friends) == 0 {
		doc.PlainText("No friends yet. Add one with `add-friend` or load the demo set with `seed`.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Location", "Last Contact", "Status", "Stay?", "Notes"},
	}
	for _, f := range friends {
		days := atlas.DaysSinceContact(f, on)
		table.Rows = append(table.Rows, []string{
			f.Name,
			f.Location,
			fmt.Sprintf("%s (%dd)", f.LastContact, days),
			atlas.ClassifyDays(days).String(),
			stay(f.CanStay),
			f.Notes,
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d friends.", len(friends)))
	return doc.String()
}

func stay(canStay bool) string {
	if canStay {
		return "yes"
	}
	return "-"
}

func names(list []string) string {
	return strings.Join(list, ", ")
}
