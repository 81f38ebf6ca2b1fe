// Package export renders priced media plans as downloadable JSON and XLSX
// documents.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/domain"
)

const (
	appName     = "YaRadioBot / Radio TO"
	description = "Полный расчет рекламной кампании"
)

// Document is the full, self-describing breakdown of a media plan. Every
// number comes from the calculator result.
type Document struct {
	Meta          Meta          `json:"meta"`
	InputData     InputData     `json:"input_data"`
	ConstantsUsed ConstantsUsed `json:"constants_used"`
	Intermediate  Intermediate  `json:"intermediate_calculations"`
	FinalOutput   FinalOutput   `json:"final_output"`

	Strategy domain.Strategy `json:"strategy"`
	Creative domain.Creative `json:"creative"`
	Scripts  []domain.Script `json:"scripts"`
	Stations []StationRow    `json:"stations"`
}

type Meta struct {
	Description string            `json:"description"`
	AppName     string            `json:"app_name"`
	PlanID      string            `json:"plan_id"`
	Source      domain.PlanSource `json:"source"`
	Scenario    string            `json:"scenario"`
	CreatedAt   time.Time         `json:"created_at"`
	ClientQuery string            `json:"client_query"`
}

type InputData struct {
	SelectedRadios    []string        `json:"selected_radios"`
	SelectedStations  []string        `json:"selected_station_ids"`
	SelectedTimeSlots []int           `json:"selected_time_slots"`
	SlotLabels        []string        `json:"slot_labels"`
	CampaignDays      int             `json:"campaign_days"`
	Duration          int             `json:"duration"`
	ProductionCost    decimal.Decimal `json:"production_cost"`
}

type ConstantsUsed struct {
	StationListeners   map[string]int64   `json:"station_listeners"`
	TotalListenersBase int64              `json:"total_listeners_base"`
	PriceTiers         []domain.PriceTier `json:"price_tiers"`
	AppliedPricePerSec decimal.Decimal    `json:"applied_price_per_sec"`
	TotalSlots         int                `json:"total_slots"`
}

type Intermediate struct {
	SpotsLogic     SpotsLogic     `json:"spots_logic"`
	FinancialLogic FinancialLogic `json:"financial_logic"`
	AudienceLogic  AudienceLogic  `json:"audience_logic"`
}

type SpotsLogic struct {
	StationsCount    int   `json:"stations_count"`
	SlotsCount       int   `json:"slots_count"`
	SpotsPerDay      int64 `json:"spots_per_day"`
	TotalSpotsPeriod int64 `json:"total_spots_period"`
}

type FinancialLogic struct {
	CostPerSpotBase       decimal.Decimal `json:"cost_per_spot_base"`
	BaseAirCostTotal      decimal.Decimal `json:"base_air_cost_total"`
	IsMaxCoverageBonus    bool            `json:"is_max_coverage_bonus"`
	BonusDiscountPercent  decimal.Decimal `json:"bonus_discount_percent"`
	DiscountAmount        decimal.Decimal `json:"discount_amount"`
	AirCostAfterDiscounts decimal.Decimal `json:"air_cost_after_discounts"`
}

type AudienceLogic struct {
	CoverageFactor         decimal.Decimal `json:"coverage_factor"`
	PotentialDailyContacts int64           `json:"potential_daily_contacts"`
	UniqueFactor           decimal.Decimal `json:"unique_factor"`
	UniqueDailyCoverage    int64           `json:"unique_daily_coverage"`
}

type FinalOutput struct {
	Financials     Financials     `json:"financials"`
	Metrics        Metrics        `json:"metrics"`
	DisplayStrings DisplayStrings `json:"display_strings"`
}

type Financials struct {
	BasePrice              decimal.Decimal `json:"base_price"`
	Discount               decimal.Decimal `json:"discount"`
	FinalPrice             int64           `json:"final_price"`
	ProductionCostIncluded decimal.Decimal `json:"production_cost_included"`
}

type Metrics struct {
	DailyCoveragePeople int64         `json:"daily_coverage_people"`
	TotalContactsPeriod int64         `json:"total_contacts_period"`
	CostPerContact      domain.Fixed2 `json:"cost_per_contact"`
}

type DisplayStrings struct {
	PriceText string `json:"price_text"`
	ReachText string `json:"reach_text"`
	CPCText   string `json:"cpc_text"`
}

// StationRow is one selected station with its reason and estimated reach.
type StationRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Frequency string `json:"freq"`
	Listeners int64  `json:"listeners"`
	Reach     int64  `json:"daily_reach"`
	Reason    string `json:"reason"`
}

// NewDocument builds the export document for a priced plan.
func NewDocument(plan domain.MediaPlan, catalog domain.Catalog) Document {
	res := plan.Result

	reasons := make(map[string]string, len(plan.Stations))
	for _, s := range plan.Stations {
		reasons[s.StationID] = s.Reason
	}

	var (
		radios, ids []string
		rows        []StationRow
		listeners   int64
	)
	for _, d := range res.StationDetails {
		radios = append(radios, strings.ToUpper(d.Name))
		ids = append(ids, d.ID)
		listeners += d.Listeners
		rows = append(rows, StationRow{
			ID:        d.ID,
			Name:      d.Name,
			Frequency: d.Frequency,
			Listeners: d.Listeners,
			Reach:     d.CalculatedReach,
			Reason:    reasons[d.ID],
		})
	}

	slots := selectedSlots(plan.Input.SlotIndices, catalog)
	labels := make([]string, 0, len(slots))
	for _, i := range slots {
		labels = append(labels, catalog.Slots[i].Label)
	}

	catalogListeners := make(map[string]int64, len(catalog.Stations))
	for _, s := range catalog.Stations {
		catalogListeners[s.Name] = s.Listeners
	}

	calc := plan.Calculation
	return Document{
		Meta: Meta{
			Description: description,
			AppName:     appName,
			PlanID:      plan.ID,
			Source:      plan.Source,
			Scenario:    plan.Strategy.Title,
			CreatedAt:   plan.CreatedAt,
			ClientQuery: plan.Query,
		},
		InputData: InputData{
			SelectedRadios:    radios,
			SelectedStations:  ids,
			SelectedTimeSlots: slots,
			SlotLabels:        labels,
			CampaignDays:      res.Days,
			Duration:          res.DurationSeconds,
			ProductionCost:    res.ProductionCost,
		},
		ConstantsUsed: ConstantsUsed{
			StationListeners:   catalogListeners,
			TotalListenersBase: listeners,
			PriceTiers:         catalog.Tiers.Sorted(),
			AppliedPricePerSec: res.PricePerSecond,
			TotalSlots:         len(catalog.Slots),
		},
		Intermediate: Intermediate{
			SpotsLogic: SpotsLogic{
				StationsCount:    res.StationCount,
				SlotsCount:       res.SlotCount,
				SpotsPerDay:      res.SpotsPerDay,
				TotalSpotsPeriod: res.TotalSpots,
			},
			FinancialLogic: FinancialLogic{
				CostPerSpotBase:       res.CostPerSpot,
				BaseAirCostTotal:      res.BaseAirCost,
				IsMaxCoverageBonus:    res.MaxCoverage(),
				BonusDiscountPercent:  res.DiscountRate,
				DiscountAmount:        res.DiscountAmount,
				AirCostAfterDiscounts: res.FinalAirCost,
			},
			AudienceLogic: AudienceLogic{
				CoverageFactor:         res.CoverageFactor,
				PotentialDailyContacts: listeners,
				UniqueFactor:           res.UniqueAudienceFactor,
				UniqueDailyCoverage:    res.DailyReach,
			},
		},
		FinalOutput: FinalOutput{
			Financials: Financials{
				BasePrice:              res.BaseAirCost.Add(res.ProductionCost),
				Discount:               res.DiscountAmount,
				FinalPrice:             res.FinalPrice,
				ProductionCostIncluded: res.ProductionCost,
			},
			Metrics: Metrics{
				DailyCoveragePeople: res.DailyReach,
				TotalContactsPeriod: calc.EstimatedReach,
				CostPerContact:      calc.CostPerContact,
			},
			DisplayStrings: DisplayStrings{
				PriceText: Price(calc.EstimatedCost),
				ReachText: Reach(calc.EstimatedReach),
				CPCText:   ContactCost(calc.CostPerContact),
			},
		},
		Strategy: plan.Strategy,
		Creative: plan.Creative,
		Scripts:  plan.Scripts,
		Stations: rows,
	}
}

// FileName returns an ASCII download name such as
// "mediaplan_rto_2026-10-16.xlsx".
func (d Document) FileName(ext string) string {
	return "mediaplan_rto_" + d.Meta.CreatedAt.Format(time.DateOnly) + "." + ext
}

// selectedSlots returns the distinct in-range indices in chronological order.
func selectedSlots(indices []int, catalog domain.Catalog) []int {
	chosen := make([]bool, len(catalog.Slots))
	for _, i := range indices {
		if i >= 0 && i < len(chosen) {
			chosen[i] = true
		}
	}
	out := make([]int, 0, len(indices))
	for i, ok := range chosen {
		if ok {
			out = append(out, i)
		}
	}
	return out
}
