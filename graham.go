package quickval

import "strings"

// GrahamAnalysis is the result of a Graham valuation of a single stock.
// It is created fresh on every call to AnalyzeGraham and holds the rounded
// figures exactly as they appear in reports.
type GrahamAnalysis struct {
	Symbol         string
	EPS            float64
	CurrentPrice   float64
	GrowthRate     float64
	IntrinsicValue float64
	MarginOfSafety Percent
	ValuationScore int
	Recommendation Recommendation
}

// IntrinsicValue computes the Graham intrinsic value estimate:
//
//	V = EPS × (8.5 + 2g)
//
// where g is the expected growth rate as a fraction (0.05 for 5%). No bounds
// are enforced: negative earnings or growth propagate into a negative value.
func IntrinsicValue(eps, growth float64) float64 {
	return eps * (8.5 + 2.0*growth)
}

// MarginOfSafety computes the fractional discount of the current price below
// the intrinsic value:
//
//	margin = (V - P) / V
//
// A zero intrinsic value is not guarded: the division yields ±Inf or NaN,
// which flows through the rest of the analysis.
func MarginOfSafety(intrinsic, price float64) float64 {
	return (intrinsic - price) / intrinsic
}

// ValuationScore maps a margin of safety to a 0-20 score. Boundary values
// resolve to the higher bracket.
func ValuationScore(margin float64) int {
	switch {
	case margin >= 0.50:
		return 20
	case margin >= 0.40:
		return 16
	case margin >= 0.30:
		return 12
	case margin >= 0.20:
		return 8
	case margin >= 0.10:
		return 4
	default:
		return 0
	}
}

// Recommend maps a margin of safety to an investment stance. Anything below a
// zero margin, including a NaN margin, is an Avoid.
func Recommend(margin float64) Recommendation {
	switch {
	case margin >= 0.50:
		return StrongBuy
	case margin >= 0.30:
		return Buy
	case margin >= 0.15:
		return Hold
	case margin >= 0.00:
		return Watch
	default:
		return Avoid
	}
}

// AnalyzeGraham runs the full Graham valuation for one stock. The symbol is
// uppercased, the intrinsic value is rounded to cents and the margin of
// safety to two decimals of percentage points.
func AnalyzeGraham(symbol string, eps, price, growth float64) GrahamAnalysis {
	intrinsic := IntrinsicValue(eps, growth)
	margin := MarginOfSafety(intrinsic, price)

	return GrahamAnalysis{
		Symbol:         strings.ToUpper(symbol),
		EPS:            eps,
		CurrentPrice:   price,
		GrowthRate:     growth,
		IntrinsicValue: roundTo(intrinsic, 2),
		MarginOfSafety: PercentOf(margin),
		ValuationScore: ValuationScore(margin),
		Recommendation: Recommend(margin),
	}
}
