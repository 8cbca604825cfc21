package livecontext

// SessionDiff is the returning-caller briefing delta computed server-side
// between the prior session and the current state. It is rendered once at
// session start.
type SessionDiff struct {
	NewInfo       []string  `json:"new_info"`
	Escalations   []string  `json:"escalations"`
	NewStrategies []string  `json:"new_strategies"`
	RiskLevel     RiskLevel `json:"risk_level,omitempty"`
}

// Empty reports whether all three buckets are empty, in which case the diff
// panel is suppressed entirely.
func (d *SessionDiff) Empty() bool {
	if d == nil {
		return true
	}
	return len(d.NewInfo) == 0 && len(d.Escalations) == 0 && len(d.NewStrategies) == 0
}
