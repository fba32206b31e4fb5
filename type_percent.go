package quickval

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage value expressed in percentage points (10.5 means 10.5%).
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString returns the string representation with an explicit sign.
func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}

// PercentOf converts a fraction (0.105) into a Percent (10.50), rounded to
// two decimals of percentage points.
func PercentOf(fraction float64) Percent {
	return Percent(roundTo(fraction*100, 2))
}

// roundTo rounds half away from zero at the given number of decimal places.
// Report figures are rounded once, on record creation, so that the text and
// JSON outputs agree.
func roundTo(v float64, places int32) float64 {
	// Non-finite values pass through untouched: a division by zero upstream
	// must remain visible in the report.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
