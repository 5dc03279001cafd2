package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// PropertiesMarkdown renders the property collection, costs displayed in
// 'currency'.
func PropertiesMarkdown(properties []atlas.Property, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Property Empire")
	if len(properties) == 0 {
		doc.PlainText("No properties yet. Add one with `add-property`.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Name", "Location", "Status", "Cost", "Climate", "Strategic"},
	}
	for _, p := range properties {
		name := p.Name
		if icon := p.Type.Icon(); icon != "" {
			name = icon + " " + name
		}
		cost := "-"
		if p.Cost.IsPositive() {
			cost = atlas.FormatCost(p.Cost, currency)
		}
		table.Rows = append(table.Rows, []string{
			name,
			p.Location,
			p.Status.String(),
			cost,
			score(p.Climate),
			score(p.Strategic),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d properties.", len(properties)))
	return doc.String()
}

func score(n int) string {
	return fmt.Sprintf("%d/5", n)
}
