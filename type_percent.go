package folio

import (
	"math"
	"strconv"
)

// Percent is a profit ratio expressed in percent points, e.g. 25 for +25%.
// It is a display type: all exact arithmetic happens on decimals before the
// conversion.
type Percent float64

// Equal compares two percentages within a fixed tolerance, absorbing the
// float conversion at the end of the decimal pipeline.
func (p Percent) Equal(q Percent) bool {
	const tolerance = 1e-4
	return math.Abs(float64(p-q)) < tolerance
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64) + "%"
}

// SignedString renders with an explicit sign; a value that rounds to zero
// renders as "-".
func (p Percent) SignedString() string {
	s := p.String()
	if s == "0.00%" || s == "-0.00%" {
		return "-"
	}
	if p > 0 {
		return "+" + s
	}
	return s
}
