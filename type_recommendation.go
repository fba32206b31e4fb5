package quickval

import "fmt"

// Recommendation is the investment stance derived from a margin of safety.
type Recommendation int

const (
	// Avoid signals a price above the intrinsic value estimate.
	Avoid Recommendation = iota
	// Watch signals a price at or barely below intrinsic value.
	Watch
	// Hold signals a moderate margin of safety.
	Hold
	// Buy signals a comfortable margin of safety.
	Buy
	// StrongBuy signals a deep discount to intrinsic value.
	StrongBuy
)

func (r Recommendation) String() string {
	switch r {
	case StrongBuy:
		return "Strong Buy (5/5)"
	case Buy:
		return "Buy (4/5)"
	case Hold:
		return "Hold (3/5)"
	case Watch:
		return "Watch (2/5)"
	case Avoid:
		return "Avoid (1/5)"
	default:
		return "unknown"
	}
}

// ParseRecommendation parses the short lowercase form of a recommendation.
func ParseRecommendation(s string) (Recommendation, error) {
	switch s {
	case "strong-buy":
		return StrongBuy, nil
	case "buy":
		return Buy, nil
	case "hold":
		return Hold, nil
	case "watch":
		return Watch, nil
	case "avoid":
		return Avoid, nil
	default:
		return 0, fmt.Errorf("unknown recommendation: %q", s)
	}
}
