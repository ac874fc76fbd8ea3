package broker

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
//
// Money with an empty currency is "untagged": it adopts the currency of
// whatever it is combined with.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money from a numeric value in the given currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the go-money definition of the money's currency, or nil
// for untagged or unknown codes.
func (m Money) currency() *money.Currency {
	if m.cur == "" {
		return nil
	}
	return money.GetCurrency(m.cur)
}

// String returns the string representation of the money value.
func (m Money) String() string {
	c := m.currency()
	if c == nil {
		return m.value.StringFixed(2)
	}
	dec := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.Round(0).IntPart())
}

// Fixed returns the value with exactly 'places' decimals and no currency symbol.
func (m Money) Fixed(places int32) string { return m.value.StringFixed(places) }

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs(), cur: m.cur} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// In returns a copy of m tagged with currency c.
func (m Money) In(c string) Money { return Money{value: m.value, cur: c} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns an approximation of the value, for reporting only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON encodes the amount as a bare JSON number, with all its digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(m.value.String()))
}
