// Package money holds exact fixed-point amounts with a two digit (cent) scale.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept by Money.
const Scale = 2

// plainDecimal is the only accepted literal shape. Exponent notation is
// rejected since rescaling a large exponent allocates without bound.
var plainDecimal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// Money is an exact decimal amount rounded to cents. The zero value is $0.00.
type Money struct {
	amount decimal.Decimal
}

// FromCents builds Money from an integer number of cents.
func FromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -Scale)}
}

// FromDecimal rounds d half away from zero to cents.
func FromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(Scale)}
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(token string) Money {
	m, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse reads a money token such as "100", "$99.5" or "$0.015".
// A single leading '$' is accepted and the value is rounded half-up to cents.
func Parse(token string) (Money, error) {
	s := strings.TrimSpace(token)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return Money{}, fmt.Errorf("empty money value %q", token)
	}

	if !plainDecimal.MatchString(s) {
		return Money{}, fmt.Errorf("invalid money value %q", token)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money value %q", token)
	}
	return FromDecimal(d), nil
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.amount.Shift(Scale).IntPart()
}

// Cmp returns -1, 0 or +1 when m is less than, equal to or greater than o.
func (m Money) Cmp(o Money) int {
	return m.amount.Cmp(o.amount)
}

// Equal reports whether m and o are the same amount.
func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

// GreaterThan reports whether m > o.
func (m Money) GreaterThan(o Money) bool {
	return m.amount.GreaterThan(o.amount)
}

// LessThan reports whether m < o.
func (m Money) LessThan(o Money) bool {
	return m.amount.LessThan(o.amount)
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Plain formats the amount with exactly two fractional digits, e.g. "100.50".
func (m Money) Plain() string {
	return m.amount.StringFixed(Scale)
}

// String formats the amount as "$X.XX".
func (m Money) String() string {
	return "$" + m.Plain()
}

// MarshalJSON encodes the amount as a quoted plain decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Plain() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal.
func (m *Money) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
