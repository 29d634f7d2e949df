package tickreport

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a display-only monetary value used by the markdown digests.
// Pipeline arithmetic stays on raw float64 prices; Money only rounds and
// formats them for humans.
type Money struct {
	value decimal.Decimal
	cur   string
}

// USD wraps a price for display: USD(1234.5).String() is "$1,234.50".
func USD(value float64) Money {
	return Money{value: decimal.NewFromFloat(value), cur: money.USD}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the locale formatted representation of the value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) IsZero() bool { return m.value.IsZero() }
