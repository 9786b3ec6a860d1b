package services

import "github.com/shopspring/decimal"

// BedroomPolicy estimates bedroom and bathroom counts for a unit from its
// monthly rent. The import formats carry no room counts, so the resolver
// applies a policy when it creates a property; swapping the policy only
// affects newly created units.
type BedroomPolicy func(rent decimal.Decimal) (bedrooms, bathrooms int)

var (
	oneBedroomCeiling   = decimal.NewFromInt(850)
	twoBedroomCeiling   = decimal.NewFromInt(1200)
	threeBedroomCeiling = decimal.NewFromInt(1600)
)

// EstimateBedroomsFromRent is the default policy. Thresholds: rent up to 850
// is a 1BR/1BA, up to 1200 a 2BR/1BA, up to 1600 a 3BR/2BA, anything above a
// 4BR/2BA. Zero or negative rent falls back to 1BR/1BA.
func EstimateBedroomsFromRent(rent decimal.Decimal) (int, int) {
	switch {
	case rent.LessThanOrEqual(decimal.Zero):
		return 1, 1
	case rent.LessThanOrEqual(oneBedroomCeiling):
		return 1, 1
	case rent.LessThanOrEqual(twoBedroomCeiling):
		return 2, 1
	case rent.LessThanOrEqual(threeBedroomCeiling):
		return 3, 2
	default:
		return 4, 2
	}
}
