package atlas

// ContinentCount is one row of the coverage tally.
type ContinentCount struct {
	Continent string
	Count     int
}

// ContinentCoverage tallies properties per continent and lists the coverage
// gaps: continents with zero properties.
type ContinentCoverage struct {
	Tally []ContinentCount // the six continents in fixed order, zeros included
	Other int              // properties whose country is not in the lookup table
	Gaps  []string         // zero-count continents, recommended focus areas
}

// NewContinentCoverage recomputes the per-continent tally. All six
// continents are always present, counted or not; unknown countries land in
// the Other bucket and never count toward (or against) a gap.
func NewContinentCoverage(properties []Property) *ContinentCoverage {
	counts := make(map[string]int, len(AllContinents))
	other := 0
	for _, p := range properties {
		continent := ContinentOf(DerivedCountry(p.Location))
		if continent == OtherContinent {
			other++
			continue
		}
		counts[continent]++
	}

	c := &ContinentCoverage{Other: other}
	for _, continent := range AllContinents {
		c.Tally = append(c.Tally, ContinentCount{Continent: continent, Count: counts[continent]})
		if counts[continent] == 0 {
			c.Gaps = append(c.Gaps, continent)
		}
	}
	return c
}

// AllCovered reports that every continent has at least one property.
func (c *ContinentCoverage) AllCovered() bool { return len(c.Gaps) == 0 }
