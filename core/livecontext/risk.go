package livecontext

// RiskLevel is the assessed caller risk reported by turn analytics.
type RiskLevel string

const (
	RiskUnknown  RiskLevel = "unknown"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// ParseRiskLevel maps wire values onto the known levels. Anything outside the
// enum collapses to RiskUnknown rather than failing.
func ParseRiskLevel(raw string) RiskLevel {
	switch RiskLevel(raw) {
	case RiskLow, RiskModerate, RiskHigh:
		return RiskLevel(raw)
	default:
		return RiskUnknown
	}
}

// Ordinal places the level on the severity scale used by the mood arc and
// escalation detection: unknown 0, low 1, moderate 2, high 3.
func (l RiskLevel) Ordinal() int {
	switch l {
	case RiskLow:
		return 1
	case RiskModerate:
		return 2
	case RiskHigh:
		return 3
	default:
		return 0
	}
}

// Known reports whether the level is one of the three assessed levels.
func (l RiskLevel) Known() bool {
	return l == RiskLow || l == RiskModerate || l == RiskHigh
}

func (l RiskLevel) String() string {
	if l == "" {
		return string(RiskUnknown)
	}
	return string(l)
}

// RiskAlert is an observed escalation transition between two known levels.
type RiskAlert struct {
	From RiskLevel `json:"from"`
	To   RiskLevel `json:"to"`
}
