package atlas

// ProximityLink connects a property to the friends living in the same
// derived country.
type ProximityLink struct {
	Property Property
	Names    []string // all matching friends, collection order
	Hosts    []string // the lodging-capable subset
}

// NewProximityLinks emits one link per property with at least one friend in
// its country, in property-collection order. Matching is a case-insensitive
// exact comparison of derived countries, not a substring search.
// Properties with no nearby friend are omitted entirely.
func NewProximityLinks(friends []Friend, properties []Property) []ProximityLink {
	var links []ProximityLink
	for _, p := range properties {
		key := CountryKey(p.Location)
		var nearby []Friend
		for _, f := range friends {
			if CountryKey(f.Location) == key {
				nearby = append(nearby, f)
			}
		}
		if len(nearby) == 0 {
			continue
		}
		links = append(links, ProximityLink{
			Property: p,
			Names:    Names(nearby),
			Hosts:    Names(Hosts(nearby)),
		})
	}
	return links
}
