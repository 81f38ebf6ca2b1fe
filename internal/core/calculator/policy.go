package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ReachMode selects how slot coverage feeds reach estimation.
type ReachMode string

const (
	// ReachUniform treats every slot as an equal share of the broadcast day.
	ReachUniform ReachMode = "uniform"
	// ReachWeighted uses each slot's audience weight, so which slots are
	// chosen matters and not only how many.
	ReachWeighted ReachMode = "weighted"
)

var errInvalidPolicy = errors.New("invalid pricing policy")

// Policy holds the tunable constants of the pricing formula. Several
// iterations of the site disagreed on them, so they are configuration rather
// than literals.
type Policy struct {
	// ProductionSurcharge is added to the air cost for producing the spot.
	// Zero models production given away for free.
	ProductionSurcharge decimal.Decimal
	// MaxCoverageDiscount is the fraction taken off the air cost when every
	// slot of the catalog is bought.
	MaxCoverageDiscount decimal.Decimal
	// CoverageAdjustment compensates for slot-coverage rounding.
	CoverageAdjustment decimal.Decimal
	// UniqueAudienceFactor deflates raw listener counts to unique reach. It
	// is a heuristic a product owner may want to tune.
	UniqueAudienceFactor decimal.Decimal
	ReachMode            ReachMode
	// MaxDays and MaxDurationSeconds bound a campaign. Longer flights or
	// spots are rejected as invalid input.
	MaxDays            int
	MaxDurationSeconds int
}

// DefaultPolicy returns the constants of the canonical calculator.
func DefaultPolicy() Policy {
	return Policy{
		ProductionSurcharge:  decimal.NewFromInt(2000),
		MaxCoverageDiscount:  decimal.RequireFromString("0.05"),
		CoverageAdjustment:   decimal.RequireFromString("1.03"),
		UniqueAudienceFactor: decimal.RequireFromString("0.7"),
		ReachMode:            ReachUniform,
		MaxDays:              366,
		MaxDurationSeconds:   300,
	}
}

// Validate checks that every constant is in its meaningful range.
func (p Policy) Validate() error {
	if p.ProductionSurcharge.IsNegative() {
		return fmt.Errorf("%w: negative production surcharge", errInvalidPolicy)
	}
	if p.MaxCoverageDiscount.IsNegative() || p.MaxCoverageDiscount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: max coverage discount must be in [0, 1)", errInvalidPolicy)
	}
	if !p.CoverageAdjustment.IsPositive() {
		return fmt.Errorf("%w: coverage adjustment must be positive", errInvalidPolicy)
	}
	if !p.UniqueAudienceFactor.IsPositive() {
		return fmt.Errorf("%w: unique audience factor must be positive", errInvalidPolicy)
	}
	if p.MaxDays <= 0 || p.MaxDurationSeconds <= 0 {
		return fmt.Errorf("%w: campaign limits must be positive", errInvalidPolicy)
	}
	switch p.ReachMode {
	case ReachUniform, ReachWeighted:
	default:
		return fmt.Errorf("%w: unknown reach mode %q", errInvalidPolicy, p.ReachMode)
	}
	return nil
}
