package folio

import "github.com/shopspring/decimal"

// Price is an optional USD value. The zero value means "unavailable": a venue
// outage, a malformed response, or a timed-out fetch all collapse into it.
// Arithmetic with an unavailable operand yields unavailable, so "no value"
// propagates explicitly instead of leaking as NaN into unrelated sums.
type Price struct {
	value decimal.Decimal
	valid bool
}

// Unavailable is the sentinel for a price that could not be fetched.
var Unavailable = Price{}

func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value), valid: true}
}

func (p Price) Available() bool { return p.valid }

// Decimal returns the underlying value; the second return is false when the
// price is unavailable.
func (p Price) Decimal() (decimal.Decimal, bool) { return p.value, p.valid }

// Mul derives a market value from a price and a quantity.
func (p Price) Mul(q Quantity) Price {
	if !p.valid {
		return Unavailable
	}
	return Price{value: p.value.Mul(q.value), valid: true}
}

// Sub subtracts a known cost from an optional value, e.g. PnL from market value.
func (p Price) Sub(m Money) Price {
	if !p.valid {
		return Unavailable
	}
	return Price{value: p.value.Sub(m.value), valid: true}
}

// Add sums two optional values. A sum involving "unavailable" is "unavailable".
func (p Price) Add(o Price) Price {
	if !p.valid || !o.valid {
		return Unavailable
	}
	return Price{value: p.value.Add(o.value), valid: true}
}

// PercentOf returns p as a percentage of m, false when p is unavailable.
func (p Price) PercentOf(m Money) (Percent, bool) {
	if !p.valid {
		return 0, false
	}
	return M(p.value).PercentOf(m), true
}

func (p Price) Equal(o Price) bool {
	if p.valid != o.valid {
		return false
	}
	return !p.valid || p.value.Equal(o.value)
}

// String formats the value as USD, or "N/A" when unavailable.
func (p Price) String() string {
	if !p.valid {
		return "N/A"
	}
	return M(p.value).String()
}

// SignedString is like String but with an explicit sign for available values.
func (p Price) SignedString() string {
	if !p.valid {
		return "N/A"
	}
	return M(p.value).SignedString()
}
