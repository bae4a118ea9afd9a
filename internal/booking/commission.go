package booking

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const currencyScale = 2

// SplitRevenue divides a booking total between the platform and the owner.
//
// Rules:
// - ratePercent is a percentage like 10 for 10%, applied against total.
// - The commission is rounded to the currency scale; any rounding delta lands
//   in the owner payout so the two parts always sum to the total exactly.
func SplitRevenue(total, ratePercent decimal.Decimal) (commission, ownerPayout decimal.Decimal, err error) {
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("booking total must be > 0")
	}
	if ratePercent.IsNegative() || ratePercent.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("commission rate must be between 0 and 100")
	}

	total = total.Round(currencyScale)
	commission = total.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(currencyScale)
	ownerPayout = total.Sub(commission)
	return commission, ownerPayout, nil
}
