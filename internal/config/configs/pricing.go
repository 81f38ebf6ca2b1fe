package configs

import (
	"github.com/shopspring/decimal"

	"radio-mediaplan/internal/core/calculator"
)

// Pricing overrides the constants of the calculation formula. Defaults are
// the canonical calculator values.
type Pricing struct {
	ProductionSurcharge  decimal.Decimal `env:"PRODUCTION_SURCHARGE" envDefault:"2000"`
	MaxCoverageDiscount  decimal.Decimal `env:"MAX_COVERAGE_DISCOUNT" envDefault:"0.05"`
	CoverageAdjustment   decimal.Decimal `env:"COVERAGE_ADJUSTMENT" envDefault:"1.03"`
	UniqueAudienceFactor decimal.Decimal `env:"UNIQUE_AUDIENCE_FACTOR" envDefault:"0.7"`
	ReachMode            string          `env:"REACH_MODE" envDefault:"uniform"`
	MaxDays              int             `env:"MAX_DAYS" envDefault:"366"`
	MaxDurationSeconds   int             `env:"MAX_DURATION_SECONDS" envDefault:"300"`
}

// Policy converts the section into a calculator policy. It is validated by
// calculator.New.
func (p Pricing) Policy() calculator.Policy {
	return calculator.Policy{
		ProductionSurcharge:  p.ProductionSurcharge,
		MaxCoverageDiscount:  p.MaxCoverageDiscount,
		CoverageAdjustment:   p.CoverageAdjustment,
		UniqueAudienceFactor: p.UniqueAudienceFactor,
		ReachMode:            calculator.ReachMode(p.ReachMode),
		MaxDays:              p.MaxDays,
		MaxDurationSeconds:   p.MaxDurationSeconds,
	}
}
