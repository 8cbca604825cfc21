package events

import "github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"

const (
	// KindRiskAlertRaised identifies a newly visible risk escalation alert.
	KindRiskAlertRaised Kind = "risk_alert.raised"
	// KindRiskAlertDismissed identifies fade-out or supersession of the
	// visible alert.
	KindRiskAlertDismissed Kind = "risk_alert.dismissed"
	// KindEmergencyRaised identifies the blocking emergency protocol overlay
	// becoming visible.
	KindEmergencyRaised Kind = "emergency.raised"
	// KindEmergencyAcknowledged identifies operator dismissal of the overlay.
	KindEmergencyAcknowledged Kind = "emergency.acknowledged"
)

// RiskAlertRaised marks a risk escalation becoming visible.
type RiskAlertRaised struct {
	Base
	Alert livecontext.RiskAlert
}

// NewRiskAlertRaised creates a risk alert raised event.
func NewRiskAlertRaised(alert livecontext.RiskAlert) RiskAlertRaised {
	return RiskAlertRaised{Base: NewBase(KindRiskAlertRaised), Alert: alert}
}

// RiskAlertDismissed marks the visible alert fading out or being replaced.
type RiskAlertDismissed struct{ Base }

// NewRiskAlertDismissed creates a risk alert dismissed event.
func NewRiskAlertDismissed() RiskAlertDismissed {
	return RiskAlertDismissed{Base: NewBase(KindRiskAlertDismissed)}
}

// EmergencyRaised marks the emergency protocol overlay becoming visible.
type EmergencyRaised struct {
	Base
	Alert livecontext.RiskAlert
}

// NewEmergencyRaised creates an emergency raised event.
func NewEmergencyRaised(alert livecontext.RiskAlert) EmergencyRaised {
	return EmergencyRaised{Base: NewBase(KindEmergencyRaised), Alert: alert}
}

// EmergencyAcknowledged marks operator dismissal of the overlay.
type EmergencyAcknowledged struct{ Base }

// NewEmergencyAcknowledged creates an emergency acknowledged event.
func NewEmergencyAcknowledged() EmergencyAcknowledged {
	return EmergencyAcknowledged{Base: NewBase(KindEmergencyAcknowledged)}
}
