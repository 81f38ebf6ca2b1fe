package domain

import "github.com/shopspring/decimal"

// Slot is one sellable hour-long broadcast window. Index is the position in
// the chronologically ordered slot catalog. Weight is the relative audience
// share of the hour and only matters for weighted reach estimation.
type Slot struct {
	Index  int             `json:"index"`
	Label  string          `json:"label"`
	Weight decimal.Decimal `json:"weight"`
}
