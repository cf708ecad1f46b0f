package fundbench

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, carried as a decimal amount in
// major units with an ISO-4217 currency code.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a float amount in major units.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// AsFloat returns the amount in major units.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// Equal reports whether amount and currency are both equal.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// currency returns a never-nil currency for the code.
func (m Money) currency() money.Currency {
	// the Money constructor resolves unknown codes to a usable default
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with its currency symbol and fraction
// rules ("₹123.45" for INR).
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
