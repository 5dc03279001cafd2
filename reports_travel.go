package atlas

// TravelGroup is a country worth traveling to: two or more friends live
// there.
type TravelGroup struct {
	Country string   // display form: first-seen casing of the derived country
	Names   []string // all friends there, collection order
	Hosts   []string // the lodging-capable subset, possibly empty
}

// TravelSuggestions groups friends by derived country and keeps only the
// countries with more than one friend.
type TravelSuggestions struct {
	Groups []TravelGroup
}

// NewTravelSuggestions recomputes the travel report from scratch. Countries
// appear in first-seen order so recomputation on an unchanged collection is
// stable.
func NewTravelSuggestions(friends []Friend) *TravelSuggestions {
	var order []string
	byCountry := make(map[string][]Friend)
	display := make(map[string]string)

	for _, f := range friends {
		key := CountryKey(f.Location)
		if _, seen := byCountry[key]; !seen {
			order = append(order, key)
			display[key] = DerivedCountry(f.Location)
		}
		byCountry[key] = append(byCountry[key], f)
	}

	s := &TravelSuggestions{}
	for _, key := range order {
		group := byCountry[key]
		if len(group) <= 1 {
			continue
		}
		s.Groups = append(s.Groups, TravelGroup{
			Country: display[key],
			Names:   Names(group),
			Hosts:   Names(Hosts(group)),
		})
	}
	return s
}

// Empty reports the explicit "add more friends" state: no country qualified.
func (s *TravelSuggestions) Empty() bool { return len(s.Groups) == 0 }
