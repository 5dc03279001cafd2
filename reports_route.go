package atlas

import (
	"math"
	"strings"
)

// RouteStop is one city of a planned route with the friends found there.
type RouteStop struct {
	City         string   // input token, first letter capitalized
	Names        []string
	Hosts        []string // lodging-capable subset; empty means "book lodging"
	AvgDaysSince int      // mean days since contact, rounded to nearest
}

// RoutePlan matches a free-text comma-separated city list against friend
// locations.
type RoutePlan struct {
	Input string
	Stops []RouteStop
}

// NewRoutePlan builds one stop per input city token that matched at least
// one friend, in token order. Matching is case-insensitive substring search
// over the whole location string, so the token "many" matches
// "Berlin, Germany". A friend matching several tokens appears under each of
// them; that duplication is intentional.
func NewRoutePlan(friends []Friend, cities string, on Date) *RoutePlan {
	p := &RoutePlan{Input: strings.TrimSpace(cities)}
	if p.Input == "" {
		return p
	}

	for _, token := range strings.Split(p.Input, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		var matched []Friend
		for _, f := range friends {
			if strings.Contains(strings.ToLower(f.Location), token) {
				matched = append(matched, f)
			}
		}
		if len(matched) == 0 {
			continue
		}
		total := 0
		for _, f := range matched {
			total += DaysSinceContact(f, on)
		}
		p.Stops = append(p.Stops, RouteStop{
			City:         capitalize(token),
			Names:        Names(matched),
			Hosts:        Names(Hosts(matched)),
			AvgDaysSince: int(math.Round(float64(total) / float64(len(matched)))),
		})
	}
	return p
}

// EmptyInput reports that there was nothing to plan with.
func (p *RoutePlan) EmptyInput() bool { return p.Input == "" }

// NoMatches reports that no token matched any friend, distinct from an
// empty input.
func (p *RoutePlan) NoMatches() bool { return p.Input != "" && len(p.Stops) == 0 }

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
