package atlas

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatCost renders a currency-agnostic cost amount in the configured
// display currency. Costs are stored as plain numbers; the currency only
// matters for formatting.
func FormatCost(cost decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return cost.StringFixed(0)
	}
	factor := decimal.New(1, int32(cur.Fraction))
	minor := cost.Mul(factor)
	return money.New(minor.IntPart(), currency).Display()
}
