package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// RemindersMarkdown renders the overdue-contact report.
func RemindersMarkdown(r *atlas.Reminders) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Reminders on %s", r.Date))
	if r.AllCaughtUp() {
		doc.PlainText("All caught up! Nobody needs a check-in.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Friend", "Location", "Days Since Contact", ""},
	}
	for _, rem := range r.Overdue {
		urgency := ""
		if rem.Urgent {
			urgency = md.Bold("overdue!")
		}
		table.Rows = append(table.Rows, []string{
			rem.Friend.Name,
			rem.Friend.Location,
			fmt.Sprintf("%d", rem.Days),
			urgency,
		})
	}
	doc.Table(table)
	return doc.String()
}
