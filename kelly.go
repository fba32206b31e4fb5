package quickval

// Position limits applied to the fractional Kelly value.
const (
	// MaxPosition caps any single position at 25% of capital.
	MaxPosition = 0.25
	// MinPosition is the weakest signal worth acting on; below it the
	// recommended position is zero.
	MinPosition = 0.02
)

// KellyAnalysis is the result of a Kelly position-sizing run. It is created
// fresh per invocation and holds the rounded figures exactly as they appear
// in reports. Exactly one of the input-echo groups is populated: the trading
// statistics (FromReturns false) or the sample count (FromReturns true).
type KellyAnalysis struct {
	KellyFull           Percent
	FractionalKelly     Percent
	RecommendedPosition Percent
	RiskLevel           RiskLevel
	IsLimited           bool

	FromReturns  bool
	WinRate      Percent
	AvgWin       float64
	AvgLoss      float64
	ReturnsCount int
}

// KellyFull computes the full Kelly fraction from win/loss statistics:
//
//	f* = (bp - q) / b   with b = avgWin/avgLoss, p = winRate, q = 1-p
//
// A zero avgLoss or a zero payoff ratio is not guarded; the division yields a
// non-finite value that propagates into the result.
func KellyFull(winRate, avgWin, avgLoss float64) float64 {
	b := avgWin / avgLoss
	p := winRate
	q := 1.0 - p
	return (b*p - q) / b
}

// KellySimplified estimates the Kelly fraction from a historical returns
// series as mean over sample variance (Bessel-corrected). It returns 0 when
// fewer than two samples are given or when the variance is exactly zero.
func KellySimplified(returns []float64) float64 {
	n := len(returns)
	if n < 2 {
		return 0.0
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mu := sum / float64(n)

	var variance float64
	for _, r := range returns {
		d := r - mu
		variance += d * d
	}
	variance /= float64(n - 1)

	if variance == 0 {
		return 0.0
	}
	return mu / variance
}

// FractionalKelly scales a Kelly fraction down by the given multiplier
// (0.25 for quarter Kelly).
func FractionalKelly(kelly, fraction float64) float64 {
	return kelly * fraction
}

// ApplyPositionLimits clamps a Kelly fraction to [MinPosition, MaxPosition].
// A value below the minimum maps to zero (signal too weak), a value above the
// maximum is capped; both cases report true as limited.
func ApplyPositionLimits(kelly float64) (float64, bool) {
	switch {
	case kelly < MinPosition:
		return 0.0, true
	case kelly > MaxPosition:
		return MaxPosition, true
	default:
		return kelly, false
	}
}

// AssessRisk classifies a Kelly fraction into a coarse risk tier. Thresholds
// are strict, so exactly 0.10 assesses Low rather than Medium.
func AssessRisk(kelly float64) RiskLevel {
	switch {
	case kelly > 0.20:
		return HighRisk
	case kelly > 0.10:
		return MediumRisk
	case kelly > 0.05:
		return LowRisk
	default:
		return VeryLowRisk
	}
}

// AnalyzeKellyStats runs the full sizing pipeline from win/loss statistics:
// full Kelly, fractional scaling, position limits, risk assessment. The risk
// tier is assessed on the fractional Kelly, before clamping.
func AnalyzeKellyStats(winRate, avgWin, avgLoss, fraction float64) KellyAnalysis {
	kelly := KellyFull(winRate, avgWin, avgLoss)
	fractional := FractionalKelly(kelly, fraction)
	position, limited := ApplyPositionLimits(fractional)

	return KellyAnalysis{
		KellyFull:           PercentOf(kelly),
		FractionalKelly:     PercentOf(fractional),
		RecommendedPosition: PercentOf(position),
		RiskLevel:           AssessRisk(fractional),
		IsLimited:           limited,
		WinRate:             Percent(roundTo(winRate*100, 1)),
		AvgWin:              avgWin,
		AvgLoss:             avgLoss,
	}
}

// AnalyzeKellyReturns runs the same sizing pipeline from a historical returns
// series, using the simplified estimator.
func AnalyzeKellyReturns(returns []float64, fraction float64) KellyAnalysis {
	kelly := KellySimplified(returns)
	fractional := FractionalKelly(kelly, fraction)
	position, limited := ApplyPositionLimits(fractional)

	return KellyAnalysis{
		KellyFull:           PercentOf(kelly),
		FractionalKelly:     PercentOf(fractional),
		RecommendedPosition: PercentOf(position),
		RiskLevel:           AssessRisk(fractional),
		IsLimited:           limited,
		FromReturns:         true,
		ReturnsCount:        len(returns),
	}
}

// MarshalJSON encodes the analysis as a flat JSON object with a stable field
// order matching the text report.
func (a KellyAnalysis) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("kelly_full", a.KellyFull).
		Append("fractional_kelly", a.FractionalKelly).
		Append("recommended_position", a.RecommendedPosition).
		Append("risk_level", a.RiskLevel).
		Append("is_limited", a.IsLimited)

	if a.FromReturns {
		w.Append("returns_count", a.ReturnsCount)
	} else {
		w.Append("win_rate", a.WinRate).
			Append("avg_win", a.AvgWin).
			Append("avg_loss", a.AvgLoss)
	}
	return w.MarshalJSON()
}
