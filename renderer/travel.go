package renderer

import (
	"bytes"
	"fmt"

	"github.com/evranch/atlas"
	md "github.com/nao1215/markdown"
)

// TravelMarkdown renders the country travel suggestions.
func TravelMarkdown(s *atlas.TravelSuggestions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Travel Suggestions")
	if s.Empty() {
		doc.PlainText("No country has more than one friend yet. Add more friends to see clusters.")
		return doc.String()
	}

	for _, g := range s.Groups {
		doc.H2(fmt.Sprintf("%s (%d friends)", g.Country, len(g.Names)))
		doc.PlainText("See " + names(g.Names) + ".")
		if len(g.Hosts) > 0 {
			doc.PlainText("Places to stay: " + names(g.Hosts) + ".")
		}
	}
	return doc.String()
}
