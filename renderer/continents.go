package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// ContinentsMarkdown renders the continent coverage tally and its gaps.
func ContinentsMarkdown(c *atlas.ContinentCoverage) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Continent Coverage")

	table := md.TableSet{
		Header: []string{"Continent", "Properties"},
	}
	for _, row := range c.Tally {
		table.Rows = append(table.Rows, []string{row.Continent, fmt.Sprintf("%d", row.Count)})
	}
	if c.Other > 0 {
		table.Rows = append(table.Rows, []string{"Other", fmt.Sprintf("%d", c.Other)})
	}
	doc.Table(table)

	if c.AllCovered() {
		doc.PlainText("World domination achieved: every continent is covered.")
		return doc.String()
	}
	doc.H2("Gaps")
	doc.PlainText("Consider looking at: " + names(c.Gaps) + ".")
	return doc.String()
}
