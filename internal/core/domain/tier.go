package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// PriceTier maps a number of selected stations to the price of one second
// of airtime.
type PriceTier struct {
	Stations       int             `json:"stations"`
	PricePerSecond decimal.Decimal `json:"pricePerSecond"`
}

// PriceTiers is the volume discount table. The rate never increases as the
// station count grows.
type PriceTiers []PriceTier

// Rate returns the per-second price for exactly n stations.
func (t PriceTiers) Rate(n int) (decimal.Decimal, bool) {
	for _, tier := range t {
		if tier.Stations == n {
			return tier.PricePerSecond, true
		}
	}
	return decimal.Zero, false
}

// Fallback returns the rate of the lowest-volume tier, which is also the most
// expensive one. It returns zero for an empty table.
func (t PriceTiers) Fallback() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	lowest := t[0]
	for _, tier := range t[1:] {
		if tier.Stations < lowest.Stations {
			lowest = tier
		}
	}
	return lowest.PricePerSecond
}

// Sorted returns a copy ordered by station count.
func (t PriceTiers) Sorted() PriceTiers {
	out := make(PriceTiers, len(t))
	copy(out, t)
	sort.Slice(out, func(i, j int) bool { return out[i].Stations < out[j].Stations })
	return out
}
