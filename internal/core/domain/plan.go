package domain

import "github.com/shopspring/decimal"

// PlanInput is one campaign configuration. StationIDs and SlotIndices are
// sets: order is irrelevant and duplicates are ignored.
type PlanInput struct {
	StationIDs      []string `json:"stationIds"`
	Days            int      `json:"days"`
	DurationSeconds int      `json:"durationSeconds"`
	SlotIndices     []int    `json:"slotIndices"`
}

// StationDetail is a selected station together with its estimated unique
// daily reach.
type StationDetail struct {
	Station
	CalculatedReach int64 `json:"calculatedReach"`
}

// PlanResult is the priced outcome of a PlanInput. Currency values are in
// roubles, reach values are person counts. It is recomputed on every call and
// never persisted.
type PlanResult struct {
	StationCount    int `json:"stationCount"`
	SlotCount       int `json:"slotCount"`
	Days            int `json:"days"`
	DurationSeconds int `json:"durationSeconds"`

	PricePerSecond decimal.Decimal `json:"pricePerSecond"`
	CostPerSpot    decimal.Decimal `json:"costPerSpot"`
	SpotsPerDay    int64           `json:"spotsPerDay"`
	TotalSpots     int64           `json:"totalSpots"`
	BaseAirCost    decimal.Decimal `json:"baseAirCost"`
	DiscountRate   decimal.Decimal `json:"discountRate"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	FinalAirCost   decimal.Decimal `json:"finalAirCost"`
	ProductionCost decimal.Decimal `json:"productionCost"`
	FinalPrice     int64           `json:"finalPrice"`

	CoverageFactor       decimal.Decimal `json:"coverageFactor"`
	UniqueAudienceFactor decimal.Decimal `json:"uniqueAudienceFactor"`
	DailyReach           int64           `json:"dailyReach"`
	TotalContacts        int64           `json:"totalContacts"`
	// CostPerContact is rounded to two places and is zero when there are no
	// contacts.
	CostPerContact Fixed2 `json:"costPerContact"`

	StationDetails []StationDetail `json:"stationDetails"`
}

// MaxCoverage reports whether the max-coverage discount was applied.
func (r PlanResult) MaxCoverage() bool {
	return r.DiscountRate.IsPositive()
}

// Summary converts the result into the compact calculation block shared with
// the planner schema.
func (r PlanResult) Summary() Calculation {
	return Calculation{
		StationsCount:  r.StationCount,
		SpotsPerDay:    r.SpotsPerDay,
		CampaignDays:   r.Days,
		TotalSpots:     r.TotalSpots,
		EstimatedReach: r.TotalContacts,
		EstimatedCost:  r.FinalPrice,
		CostPerContact: r.CostPerContact,
	}
}

// Calculation is the compact pricing block. Both the planner model and the
// calculator produce it, so export and notification code never has to know
// where a plan's numbers came from.
type Calculation struct {
	StationsCount  int    `json:"stations_count"`
	SpotsPerDay    int64  `json:"spots_per_day"`
	CampaignDays   int    `json:"campaign_days"`
	TotalSpots     int64  `json:"total_spots"`
	EstimatedReach int64  `json:"estimated_reach"`
	EstimatedCost  int64  `json:"estimated_cost"`
	CostPerContact Fixed2 `json:"cost_per_contact"`
}

// Equal reports whether two calculation blocks carry the same numbers.
func (c Calculation) Equal(o Calculation) bool {
	return c.StationsCount == o.StationsCount &&
		c.SpotsPerDay == o.SpotsPerDay &&
		c.CampaignDays == o.CampaignDays &&
		c.TotalSpots == o.TotalSpots &&
		c.EstimatedReach == o.EstimatedReach &&
		c.EstimatedCost == o.EstimatedCost &&
		c.CostPerContact.Equal(o.CostPerContact)
}
