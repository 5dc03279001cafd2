package atlas

// Stats is the at-a-glance dashboard: headline counts recomputed from the
// friend collection.
type Stats struct {
	Friends   int // total records
	Countries int // distinct derived countries, case-insensitive
	Hosts     int // friends offering a place to stay
	Overdue   int // friends past the soft contact threshold
}

// NewStats recomputes the dashboard counts for the given day.
func NewStats(friends []Friend, on Date) *Stats {
	countries := make(map[string]bool)
	s := &Stats{Friends: len(friends)}
	for _, f := range friends {
		countries[CountryKey(f.Location)] = true
		if f.CanStay {
			s.Hosts++
		}
		if Overdue(f, on) {
			s.Overdue++
		}
	}
	s.Countries = len(countries)
	return s
}
