package atlas

import (
	"slices"
	"strings"
)

// AddRequest is the outcome of parsing a spoken or typed "add" utterance.
type AddRequest struct {
	Name     string
	Location string
}

// ParseAddUtterance extracts a friend name and location from a free-form
// phrase shaped like "add NAME in LOCATION", for example
// "add maria in porto portugal". The words between "add" and the first
// following "in" form the name, everything after forms the location, and
// both get their first letter capitalized. Returns false when the phrase
// does not fit the pattern or either part comes out empty.
func ParseAddUtterance(transcript string) (AddRequest, bool) {
	words := strings.Fields(strings.ToLower(transcript))
	addIndex := slices.Index(words, "add")
	if addIndex < 0 {
		return AddRequest{}, false
	}
	inIndex := slices.Index(words[addIndex:], "in")
	if inIndex < 0 {
		return AddRequest{}, false
	}
	inIndex += addIndex

	name := strings.Join(words[addIndex+1:inIndex], " ")
	location := strings.Join(words[inIndex+1:], " ")
	if name == "" || location == "" {
		return AddRequest{}, false
	}
	return AddRequest{Name: capitalize(name), Location: capitalize(location)}, true
}
