package renderer

import (
	"bytes"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// LinksMarkdown renders the friend-property proximity links.
func LinksMarkdown(links []atlas.ProximityLink) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Friends Near Properties")
	if len(links) == 0 {
		doc.PlainText("No property shares a country with a friend yet.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Property", "Location", "Friends Nearby", "Can Host"},
	}
	for _, l := range links {
		hosts := names(l.Hosts)
		if hosts == "" {
			hosts = "-"
		}
		table.Rows = append(table.Rows, []string{
			l.Property.Name,
			l.Property.Location,
			names(l.Names),
			hosts,
		})
	}
	doc.Table(table)
	return doc.String()
}
