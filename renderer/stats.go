package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// StatsMarkdown renders the headline dashboard counts.
func StatsMarkdown(s *atlas.Stats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Network at a Glance")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Count"},
		Rows: [][]string{
			{"Friends", fmt.Sprintf("%d", s.Friends)},
			{"Countries", fmt.Sprintf("%d", s.Countries)},
			{"Places to stay", fmt.Sprintf("%d", s.Hosts)},
			{"Overdue check-ins", fmt.Sprintf("%d", s.Overdue)},
		},
	})
	return doc.String()
}
