package atlas

import "strings"

// DerivedCountry extracts the country of a free-text "City, Country"
// location: the trailing comma-separated segment, trimmed. The original
// casing is kept for display.
//
// There is deliberately no normalization: "UK" and "United Kingdom" are
// distinct countries to every grouping below, exactly like the data the
// records were created with. Garbage free text yields garbage grouping.
func DerivedCountry(location string) string {
	segments := strings.Split(location, ",")
	return strings.TrimSpace(segments[len(segments)-1])
}

// CountryKey is the comparison form of a derived country: lower-cased. All
// grouping, continent mapping and proximity linking compare on this key.
func CountryKey(location string) string {
	return strings.ToLower(DerivedCountry(location))
}
