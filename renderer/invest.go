package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// InvestMarkdown renders the ranked investment priorities, costs displayed
// in 'currency'.
func InvestMarkdown(r *atlas.InvestmentPriorities, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Priorities")
	if r.NothingToPrioritize() {
		doc.PlainText("Nothing to prioritize: every property is already owned, or there are none.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"#", "Property", "Location", "Cost", "Score", "Why"},
	}
	for i, rank := range r.Ranked {
		p := rank.Property
		cost := "-"
		if p.Cost.IsPositive() {
			cost = atlas.FormatCost(p.Cost, currency)
		}
		why := names(rank.Factors)
		if why == "" {
			why = "-"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", i+1),
			p.Name,
			p.Location,
			cost,
			fmt.Sprintf("%d", rank.Score),
			why,
		})
	}
	doc.Table(table)
	return doc.String()
}
