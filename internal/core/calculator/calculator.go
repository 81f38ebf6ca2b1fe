// Package calculator converts a campaign configuration into price, reach
// and cost-per-contact figures.
package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/domain"
)

// Calculator prices media plans against one catalog and policy. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	catalog     domain.Catalog
	policy      Policy
	totalWeight decimal.Decimal
}

// New validates the catalog and policy and returns a Calculator bound to
// them.
func New(catalog domain.Catalog, policy Policy) (*Calculator, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	totalWeight := catalog.TotalWeight()
	if policy.ReachMode == ReachWeighted && !totalWeight.IsPositive() {
		return nil, fmt.Errorf("%w: weighted reach needs positive slot weights", domain.ErrInvalidCatalog)
	}
	return &Calculator{catalog: catalog, policy: policy, totalWeight: totalWeight}, nil
}

// Catalog returns the reference data the calculator prices against.
func (c *Calculator) Catalog() domain.Catalog {
	return c.catalog
}

// Policy returns the active pricing constants.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// PricePerSecond returns the tier rate for a station count. The count is
// clamped to [1, len(stations)] so an empty selection is priced at the
// single-station rate instead of missing the table.
func (c *Calculator) PricePerSecond(stationCount int) decimal.Decimal {
	n := min(max(stationCount, 1), len(c.catalog.Stations))
	if rate, ok := c.catalog.Tiers.Rate(n); ok {
		return rate
	}
	return c.catalog.Tiers.Fallback()
}

// Compute prices a campaign. Invalid input is rejected with an error matching
// domain.ErrInvalidInput; any valid input yields a fully populated result.
func (c *Calculator) Compute(in domain.PlanInput) (domain.PlanResult, error) {
	if in.Days <= 0 || in.Days > c.policy.MaxDays {
		return domain.PlanResult{}, domain.NewInputError("days", "must be in [1, %d], got %d", c.policy.MaxDays, in.Days)
	}
	if in.DurationSeconds <= 0 || in.DurationSeconds > c.policy.MaxDurationSeconds {
		return domain.PlanResult{}, domain.NewInputError("durationSeconds",
			"must be in [1, %d], got %d", c.policy.MaxDurationSeconds, in.DurationSeconds)
	}
	stations, err := c.selectStations(in.StationIDs)
	if err != nil {
		return domain.PlanResult{}, err
	}
	slots, err := c.selectSlots(in.SlotIndices)
	if err != nil {
		return domain.PlanResult{}, err
	}

	stationCount, slotCount := len(stations), len(slots)

	pricePerSecond := c.PricePerSecond(stationCount)
	costPerSpot := decimal.NewFromInt(int64(in.DurationSeconds)).Mul(pricePerSecond)
	spotsPerDay := int64(stationCount) * int64(slotCount)
	totalSpots := spotsPerDay * int64(in.Days)
	baseAirCost := costPerSpot.Mul(decimal.NewFromInt(totalSpots))

	// step function: only the full slot grid earns the discount
	discountRate := decimal.Zero
	if slotCount == len(c.catalog.Slots) {
		discountRate = c.policy.MaxCoverageDiscount
	}
	discountAmount := baseAirCost.Mul(discountRate)
	finalAirCost := baseAirCost.Sub(discountAmount)

	coverageNum, coverageDen := c.coverage(slots)
	reachNum := coverageNum.Mul(c.policy.UniqueAudienceFactor)

	details := make([]domain.StationDetail, 0, stationCount)
	var dailyReach int64
	for _, s := range stations {
		reach := decimal.NewFromInt(s.Listeners).Mul(reachNum).Div(coverageDen).Round(0).IntPart()
		dailyReach += reach
		details = append(details, domain.StationDetail{Station: s, CalculatedReach: reach})
	}
	totalContacts := dailyReach * int64(in.Days)

	var costPerContact domain.Fixed2
	if totalContacts > 0 {
		costPerContact = domain.NewFixed2(finalAirCost.Div(decimal.NewFromInt(totalContacts)))
	}

	return domain.PlanResult{
		StationCount:         stationCount,
		SlotCount:            slotCount,
		Days:                 in.Days,
		DurationSeconds:      in.DurationSeconds,
		PricePerSecond:       pricePerSecond,
		CostPerSpot:          costPerSpot,
		SpotsPerDay:          spotsPerDay,
		TotalSpots:           totalSpots,
		BaseAirCost:          baseAirCost,
		DiscountRate:         discountRate,
		DiscountAmount:       discountAmount,
		FinalAirCost:         finalAirCost,
		ProductionCost:       c.policy.ProductionSurcharge,
		FinalPrice:           finalAirCost.Add(c.policy.ProductionSurcharge).Round(0).IntPart(),
		CoverageFactor:       coverageNum.Div(coverageDen).Round(4),
		UniqueAudienceFactor: c.policy.UniqueAudienceFactor,
		DailyReach:           dailyReach,
		TotalContacts:        totalContacts,
		CostPerContact:       costPerContact,
		StationDetails:       details,
	}, nil
}

// coverage returns the bought share of the broadcast day as num/den, with
// the coverage adjustment already applied to num.
func (c *Calculator) coverage(slots []domain.Slot) (num, den decimal.Decimal) {
	if c.policy.ReachMode == ReachWeighted {
		sum := decimal.Zero
		for _, s := range slots {
			sum = sum.Add(s.Weight)
		}
		return sum.Mul(c.policy.CoverageAdjustment), c.totalWeight
	}
	return decimal.NewFromInt(int64(len(slots))).Mul(c.policy.CoverageAdjustment),
		decimal.NewFromInt(int64(len(c.catalog.Slots)))
}

// selectStations resolves ids to catalog stations in catalog order, ignoring
// duplicates.
func (c *Calculator) selectStations(ids []string) ([]domain.Station, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := c.catalog.Station(id); !ok {
			return nil, domain.NewInputError("stationIds", "unknown station %q", id)
		}
		wanted[id] = struct{}{}
	}
	out := make([]domain.Station, 0, len(wanted))
	for _, s := range c.catalog.Stations {
		if _, ok := wanted[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// selectSlots resolves indices to catalog slots in chronological order,
// ignoring duplicates.
func (c *Calculator) selectSlots(indices []int) ([]domain.Slot, error) {
	chosen := make([]bool, len(c.catalog.Slots))
	for _, i := range indices {
		if i < 0 || i >= len(c.catalog.Slots) {
			return nil, domain.NewInputError("slotIndices", "index %d outside [0, %d)", i, len(c.catalog.Slots))
		}
		chosen[i] = true
	}
	out := make([]domain.Slot, 0, len(indices))
	for i, ok := range chosen {
		if ok {
			out = append(out, c.catalog.Slots[i])
		}
	}
	return out, nil
}
