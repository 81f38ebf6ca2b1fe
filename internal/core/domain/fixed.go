package domain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Fixed2 is a decimal rounded to two places that always renders with exactly
// two fractional digits, so 0.1 goes on the wire as "0.10".
type Fixed2 struct {
	decimal.Decimal
}

// NewFixed2 rounds d half away from zero to two places.
func NewFixed2(d decimal.Decimal) Fixed2 {
	return Fixed2{Decimal: d.Round(2)}
}

func (f Fixed2) String() string {
	return f.StringFixed(2)
}

func (f Fixed2) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (f *Fixed2) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = Fixed2{}
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*f = NewFixed2(d)
	return nil
}

func (f Fixed2) MarshalText() ([]byte, error) {
	return []byte(f.StringFixed(2)), nil
}

func (f *Fixed2) UnmarshalText(b []byte) error {
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return err
	}
	*f = NewFixed2(d)
	return nil
}

// Equal compares the rounded values.
func (f Fixed2) Equal(o Fixed2) bool {
	return f.Decimal.Equal(o.Decimal)
}
