package atlas

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Cost tiers for the investment score. A zero or missing cost earns no tier
// bonus at all.
var (
	affordableCost = decimal.NewFromInt(100_000)
	midTierCost    = decimal.NewFromInt(250_000)
)

// InvestmentRank is one scored property with the human-readable factors
// that contributed.
type InvestmentRank struct {
	Property Property
	Score    int
	Factors  []string
}

// InvestmentPriorities ranks the non-owned properties by a weighted score
// and keeps the top five.
type InvestmentPriorities struct {
	Ranked []InvestmentRank
}

// NewInvestmentPriorities scores every non-owned property:
//
//	score = 2*climate + 2*strategic + costTier + friendsInCountry
//
// where costTier is 3 below 100k, 2 below 250k, 1 otherwise, and 0 for a
// zero cost. The sort is stable: equal scores keep collection order.
func NewInvestmentPriorities(friends []Friend, properties []Property) *InvestmentPriorities {
	friendsPerCountry := make(map[string]int)
	for _, f := range friends {
		friendsPerCountry[CountryKey(f.Location)]++
	}

	r := &InvestmentPriorities{}
	for _, p := range properties {
		if p.Status == Owned {
			continue
		}
		nearby := friendsPerCountry[CountryKey(p.Location)]
		score := 2*p.Climate + 2*p.Strategic + costTier(p.Cost) + nearby

		var factors []string
		if p.Climate >= 4 {
			factors = append(factors, "great climate")
		}
		if p.Strategic >= 4 {
			factors = append(factors, "strategic location")
		}
		if p.Cost.IsPositive() && p.Cost.LessThan(affordableCost) {
			factors = append(factors, "affordable")
		}
		if nearby > 0 {
			factors = append(factors, fmt.Sprintf("%d friends nearby", nearby))
		}

		r.Ranked = append(r.Ranked, InvestmentRank{Property: p, Score: score, Factors: factors})
	}

	sort.SliceStable(r.Ranked, func(i, j int) bool {
		return r.Ranked[i].Score > r.Ranked[j].Score
	})
	if len(r.Ranked) > 5 {
		r.Ranked = r.Ranked[:5]
	}
	return r
}

// NothingToPrioritize reports that every property is already owned (or there
// are none).
func (r *InvestmentPriorities) NothingToPrioritize() bool { return len(r.Ranked) == 0 }

func costTier(cost decimal.Decimal) int {
	switch {
	case !cost.IsPositive():
		return 0
	case cost.LessThan(affordableCost):
		return 3
	case cost.LessThan(midTierCost):
		return 2
	default:
		return 1
	}
}
