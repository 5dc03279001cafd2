package atlas

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

var reportDay = NewDate(2024, 7, 10)

// a small network spanning three countries, two of them clustered
func network() []Friend {
	return []Friend{
		{Name: "Alex", Location: "Berlin, Germany", LastContact: NewDate(2024, 6, 15), CanStay: true},
		{Name: "Jordan", Location: "London, UK", LastContact: NewDate(2024, 7, 1)},
		{Name: "Casey", Location: "Sydney, Australia", LastContact: NewDate(2024, 3, 15), CanStay: true},
		{Name: "Taylor", Location: "Melbourne, Australia", LastContact: NewDate(2024, 5, 22)},
		{Name: "Morgan", Location: "Brisbane, Australia", LastContact: NewDate(2024, 2, 28), CanStay: true},
	}
}

func TestTravelSuggestions(t *testing.T) {
	s := NewTravelSuggestions(network())
	if len(s.Groups) != 1 {
		t.Fatalf("got %d groups, want just Australia: %+v", len(s.Groups), s.Groups)
	}
	g := s.Groups[0]
	if g.Country != "Australia" {
		t.Errorf("country = %q, want Australia", g.Country)
	}
	if !slices.Equal(g.Names, []string{"Casey", "Taylor", "Morgan"}) {
		t.Errorf("names = %v", g.Names)
	}
	if !slices.Equal(g.Hosts, []string{"Casey", "Morgan"}) {
		t.Errorf("hosts = %v", g.Hosts)
	}
}

func TestTravelSuggestionsCaseInsensitive(t *testing.T) {
	s := NewTravelSuggestions([]Friend{
		{Name: "A", Location: "Porto, portugal"},
		{Name: "B", Location: "Lisbon, PORTUGAL"},
	})
	if len(s.Groups) != 1 {
		t.Fatalf("case variants should group together: %+v", s.Groups)
	}
	// display casing follows the first record seen
	if s.Groups[0].Country != "portugal" {
		t.Errorf("country = %q, want first-seen casing", s.Groups[0].Country)
	}
}

func TestTravelSuggestionsEmpty(t *testing.T) {
	s := NewTravelSuggestions([]Friend{{Name: "A", Location: "Oslo, Norway"}})
	if !s.Empty() {
		t.Errorf("one friend per country should yield no suggestions: %+v", s.Groups)
	}
}

func TestRoutePlan(t *testing.T) {
	p := NewRoutePlan(network(), "berlin, sydney, oslo", reportDay)
	if len(p.Stops) != 2 {
		t.Fatalf("got %d stops, want 2: %+v", len(p.Stops), p.Stops)
	}
	if p.Stops[0].City != "Berlin" || p.Stops[1].City != "Sydney" {
		t.Errorf("stops out of token order: %+v", p.Stops)
	}
	if !slices.Equal(p.Stops[0].Names, []string{"Alex"}) {
		t.Errorf("berlin names = %v", p.Stops[0].Names)
	}
	if p.Stops[0].AvgDaysSince != 25 {
		t.Errorf("berlin avg = %d, want 25", p.Stops[0].AvgDaysSince)
	}
}

// a partial token matches anywhere in the location string
func TestRoutePlanSubstringMatch(t *testing.T) {
	p := NewRoutePlan(network(), "many", reportDay)
	if len(p.Stops) != 1 || !slices.Equal(p.Stops[0].Names, []string{"Alex"}) {
		t.Fatalf("\"many\" should match Germany: %+v", p.Stops)
	}
}

func TestRoutePlanStates(t *testing.T) {
	if p := NewRoutePlan(network(), "   ", reportDay); !p.EmptyInput() {
		t.Error("blank input should report EmptyInput")
	}
	p := NewRoutePlan(network(), "atlantis", reportDay)
	if p.EmptyInput() || !p.NoMatches() {
		t.Errorf("unmatched input should report NoMatches: %+v", p)
	}
}

func TestRoutePlanAverageRounding(t *testing.T) {
	friends := []Friend{
		{Name: "A", Location: "Rome, Italy", LastContact: reportDay.Add(-10)},
		{Name: "B", Location: "Rome, Italy", LastContact: reportDay.Add(-15)},
	}
	p := NewRoutePlan(friends, "rome", reportDay)
	// mean of 10 and 15 rounds half away from zero
	if p.Stops[0].AvgDaysSince != 13 {
		t.Errorf("avg = %d, want 13", p.Stops[0].AvgDaysSince)
	}
}

func TestContinentCoverage(t *testing.T) {
	c := NewContinentCoverage([]Property{
		{Name: "a", Location: "Faro, Portugal"},
		{Name: "b", Location: "Ubud, Indonesia"},
		{Name: "c", Location: "Tulum, Mexico"},
		{Name: "d", Location: "Somewhere, Narnia"},
	})

	counts := map[string]int{}
	for _, row := range c.Tally {
		counts[row.Continent] = row.Count
	}
	if counts[Europe] != 1 || counts[Asia] != 1 || counts[NorthAmerica] != 1 {
		t.Errorf("tally = %v", counts)
	}
	if c.Other != 1 {
		t.Errorf("other = %d, want 1", c.Other)
	}
	if !slices.Equal(c.Gaps, []string{SouthAmerica, Africa, Oceania}) {
		t.Errorf("gaps = %v", c.Gaps)
	}
}

func TestContinentCoverageAllCovered(t *testing.T) {
	c := NewContinentCoverage([]Property{
		{Location: "Lisbon, Portugal"},
		{Location: "Tokyo, Japan"},
		{Location: "Austin, USA"},
		{Location: "Lima, Peru"},
		{Location: "Cairo, Egypt"},
		{Location: "Sydney, Australia"},
	})
	if !c.AllCovered() {
		t.Errorf("gaps = %v, want none", c.Gaps)
	}
}

func TestProximityLinks(t *testing.T) {
	friends := []Friend{
		{Name: "Riley", Location: "Lisbon, Portugal", CanStay: true},
		{Name: "Nico", Location: "Porto, Portugal"},
		{Name: "Sage", Location: "Tokyo, Japan"},
	}
	properties := []Property{
		{Name: "Villa Aurora", Location: "Faro, Portugal"},
		{Name: "Loft", Location: "Oslo, Norway"},
	}

	links := NewProximityLinks(friends, properties)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), links)
	}
	l := links[0]
	if l.Property.Name != "Villa Aurora" {
		t.Errorf("property = %q", l.Property.Name)
	}
	if !slices.Equal(l.Names, []string{"Riley", "Nico"}) {
		t.Errorf("names = %v", l.Names)
	}
	if !slices.Equal(l.Hosts, []string{"Riley"}) {
		t.Errorf("hosts = %v", l.Hosts)
	}
}

func TestInvestmentPriorities(t *testing.T) {
	friends := []Friend{
		{Name: "Riley", Location: "Lisbon, Portugal"},
		{Name: "Nico", Location: "Porto, Portugal"},
	}
	properties := []Property{
		// 2*5 + 2*4 + 3 (<100k) + 2 friends = 23
		{Name: "Cottage", Location: "Faro, Portugal", Climate: 5, Strategic: 4, Cost: decimal.NewFromInt(90_000)},
		// 2*2 + 2*1 + 1 (>=250k) + 0 friends = 7
		{Name: "Tower", Location: "Oslo, Norway", Climate: 2, Strategic: 1, Cost: decimal.NewFromInt(400_000)},
		{Name: "Castle", Location: "Nice, France", Status: Owned, Climate: 5, Strategic: 5},
	}

	r := NewInvestmentPriorities(friends, properties)
	if len(r.Ranked) != 2 {
		t.Fatalf("got %d ranked, owned must be excluded: %+v", len(r.Ranked), r.Ranked)
	}
	if r.Ranked[0].Property.Name != "Cottage" || r.Ranked[0].Score != 23 {
		t.Errorf("top = %s score %d, want Cottage 23", r.Ranked[0].Property.Name, r.Ranked[0].Score)
	}
	if r.Ranked[1].Score != 7 {
		t.Errorf("second score = %d, want 7", r.Ranked[1].Score)
	}
	if !slices.Equal(r.Ranked[0].Factors, []string{"great climate", "strategic location", "affordable", "2 friends nearby"}) {
		t.Errorf("factors = %v", r.Ranked[0].Factors)
	}
}

func TestInvestmentPrioritiesCostTiers(t *testing.T) {
	score := func(cost int64) int {
		r := NewInvestmentPriorities(nil, []Property{{Name: "p", Location: "x", Cost: decimal.NewFromInt(cost)}})
		return r.Ranked[0].Score
	}
	if got := score(0); got != 0 {
		t.Errorf("zero cost tier = %d, want 0", got)
	}
	if got := score(99_999); got != 3 {
		t.Errorf("cheap tier = %d, want 3", got)
	}
	if got := score(100_000); got != 2 {
		t.Errorf("mid tier = %d, want 2", got)
	}
	if got := score(250_000); got != 1 {
		t.Errorf("dear tier = %d, want 1", got)
	}
}

func TestInvestmentPrioritiesStableTopFive(t *testing.T) {
	var properties []Property
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		properties = append(properties, Property{Name: name, Location: "x", Climate: 3, Strategic: 3})
	}
	r := NewInvestmentPriorities(nil, properties)
	if len(r.Ranked) != 5 {
		t.Fatalf("got %d ranked, want top 5", len(r.Ranked))
	}
	// equal scores keep collection order
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if r.Ranked[i].Property.Name != want {
			t.Errorf("rank %d = %s, want %s", i, r.Ranked[i].Property.Name, want)
		}
	}
}

func TestStats(t *testing.T) {
	s := NewStats(network(), reportDay)
	if s.Friends != 5 {
		t.Errorf("friends = %d, want 5", s.Friends)
	}
	if s.Countries != 3 {
		t.Errorf("countries = %d, want 3", s.Countries)
	}
	if s.Hosts != 3 {
		t.Errorf("hosts = %d, want 3", s.Hosts)
	}
	// Casey, Taylor, Morgan are all past 30 days on the report day
	if s.Overdue != 3 {
		t.Errorf("overdue = %d, want 3", s.Overdue)
	}
}
