package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// RouteMarkdown renders the city-by-city route plan.
func RouteMarkdown(p *atlas.RoutePlan) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Route Plan")
	switch {
	case p.EmptyInput():
		doc.PlainText("Give me some cities, like: `route \"berlin, stockholm, london\"`.")
		return doc.String()
	case p.NoMatches():
		doc.PlainText(fmt.Sprintf("No friends found along %q. Try other cities or add friends first.", p.Input))
		return doc.String()
	}

	for _, stop := range p.Stops {
		doc.H2(stop.City)
		doc.PlainText(fmt.Sprintf("See %s (avg %d days since contact).", names(stop.Names), stop.AvgDaysSince))
		if len(stop.Hosts) > 0 {
			doc.PlainText("Stay with " + names(stop.Hosts) + ".")
		} else {
			doc.PlainText("Nobody can host here, book lodging.")
		}
	}
	return doc.String()
}
