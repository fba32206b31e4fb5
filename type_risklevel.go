package quickval

import "encoding/json"

// RiskLevel is a coarse classification of position aggressiveness derived
// from the fractional Kelly value.
type RiskLevel int

const (
	VeryLowRisk RiskLevel = iota
	LowRisk
	MediumRisk
	HighRisk
)

func (r RiskLevel) String() string {
	switch r {
	case HighRisk:
		return "High"
	case MediumRisk:
		return "Medium"
	case LowRisk:
		return "Low"
	case VeryLowRisk:
		return "Very Low"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the risk level by its display name.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}
