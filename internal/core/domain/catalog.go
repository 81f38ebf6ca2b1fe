package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog is the static reference data every calculation runs against:
// sellable stations, the ordered slot list and the volume pricing table.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Stations []Station  `json:"stations"`
	Slots    []Slot     `json:"slots"`
	Tiers    PriceTiers `json:"tiers"`
}

// Validate checks the catalog invariants. The returned error wraps
// ErrInvalidCatalog.
func (c Catalog) Validate() error {
	if len(c.Stations) == 0 {
		return fmt.Errorf("%w: no stations", ErrInvalidCatalog)
	}
	if len(c.Slots) == 0 {
		return fmt.Errorf("%w: no slots", ErrInvalidCatalog)
	}

	seen := make(map[string]struct{}, len(c.Stations))
	for _, s := range c.Stations {
		if s.ID == "" {
			return fmt.Errorf("%w: station %q has empty id", ErrInvalidCatalog, s.Name)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate station id %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Listeners <= 0 {
			return fmt.Errorf("%w: station %q has non-positive listeners", ErrInvalidCatalog, s.ID)
		}
	}

	for i, slot := range c.Slots {
		if slot.Index != i {
			return fmt.Errorf("%w: slot %q has index %d, want %d", ErrInvalidCatalog, slot.Label, slot.Index, i)
		}
		if slot.Weight.IsNegative() {
			return fmt.Errorf("%w: slot %q has negative weight", ErrInvalidCatalog, slot.Label)
		}
	}

	// every clamped station count must resolve to a rate, and rates must
	// not grow with volume
	prev := decimal.Zero
	for n := 1; n <= len(c.Stations); n++ {
		rate, ok := c.Tiers.Rate(n)
		if !ok {
			return fmt.Errorf("%w: no price tier for %d stations", ErrInvalidCatalog, n)
		}
		if !rate.IsPositive() {
			return fmt.Errorf("%w: non-positive rate for %d stations", ErrInvalidCatalog, n)
		}
		if n > 1 && rate.GreaterThan(prev) {
			return fmt.Errorf("%w: rate for %d stations exceeds rate for %d", ErrInvalidCatalog, n, n-1)
		}
		prev = rate
	}
	return nil
}

// Station returns the station with the given id.
func (c Catalog) Station(id string) (Station, bool) {
	for _, s := range c.Stations {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}

// StationByName resolves a free-form station name, as produced by the
// planner model, to a catalog station. An exact case-insensitive match wins;
// otherwise the first station whose name is contained in the query is used.
func (c Catalog) StationByName(name string) (Station, bool) {
	query := strings.ToUpper(strings.TrimSpace(name))
	if query == "" {
		return Station{}, false
	}
	for _, s := range c.Stations {
		if strings.ToUpper(s.Name) == query {
			return s, true
		}
	}
	for _, s := range c.Stations {
		if strings.Contains(query, strings.ToUpper(s.Name)) {
			return s, true
		}
	}
	return Station{}, false
}

// TotalWeight sums the weights of all slots.
func (c Catalog) TotalWeight() decimal.Decimal {
	total := decimal.Zero
	for _, s := range c.Slots {
		total = total.Add(s.Weight)
	}
	return total
}
