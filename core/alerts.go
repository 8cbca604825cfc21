package bridge

import (
	"sync"
	"time"

	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

const (
	riskAlertDismissAfter = 8 * time.Second
	riskAlertRemoveAfter  = 500 * time.Millisecond
	coachingFadeAfter     = 12 * time.Second
)

// AlertView is the currently visible transient risk alert, if any.
type AlertView struct {
	Alert  livecontext.RiskAlert
	Fading bool
}

// CoachingView is the currently visible coaching tip, if any. A faded tip
// stays visible but dimmed until superseded or reset.
type CoachingView struct {
	Coaching livecontext.Coaching
	Fading   bool
}

// alertScheduler keeps at most one risk alert and one coaching tip visible,
// replacing rather than stacking, and arms the emergency overlay on every
// escalation to the maximum severity.
type alertScheduler struct {
	mu    sync.Mutex
	tasks *taskScheduler
	emit  eventEmitter

	alert           *AlertView
	alertHandle     string
	coaching        *CoachingView
	coachingHandle  string
	emergencyActive bool

	dismissAfter time.Duration
	removeAfter  time.Duration
	fadeAfter    time.Duration
}

func newAlertScheduler(tasks *taskScheduler, emit eventEmitter) *alertScheduler {
	return &alertScheduler{
		tasks:        tasks,
		emit:         emit,
		dismissAfter: riskAlertDismissAfter,
		removeAfter:  riskAlertRemoveAfter,
		fadeAfter:    coachingFadeAfter,
	}
}

// RaiseRiskAlert replaces any visible alert with the new transition and arms
// the auto-dismiss fade.
func (a *alertScheduler) RaiseRiskAlert(alert livecontext.RiskAlert) {
	if a == nil {
		return
	}

	a.mu.Lock()
	a.tasks.Cancel(a.alertHandle)
	superseded := a.alert != nil
	a.alert = &AlertView{Alert: alert}
	a.alertHandle = a.tasks.Schedule(a.dismissAfter, func() { a.fadeRiskAlert() })
	emit := a.emit
	a.mu.Unlock()

	if superseded {
		emit(events.NewRiskAlertDismissed())
	}
	emit(events.NewRiskAlertRaised(alert))
}

func (a *alertScheduler) fadeRiskAlert() {
	a.mu.Lock()
	if a.alert == nil {
		a.mu.Unlock()
		return
	}
	a.alert.Fading = true
	a.alertHandle = a.tasks.Schedule(a.removeAfter, func() { a.removeRiskAlert() })
	a.mu.Unlock()
}

func (a *alertScheduler) removeRiskAlert() {
	a.mu.Lock()
	if a.alert == nil {
		a.mu.Unlock()
		return
	}
	a.alert = nil
	a.alertHandle = ""
	emit := a.emit
	a.mu.Unlock()

	emit(events.NewRiskAlertDismissed())
}

// RaiseEmergency arms the blocking overlay. Every call re-arms it, even if a
// previous escalation was already acknowledged.
func (a *alertScheduler) RaiseEmergency(alert livecontext.RiskAlert) {
	if a == nil {
		return
	}

	a.mu.Lock()
	a.emergencyActive = true
	emit := a.emit
	a.mu.Unlock()

	emit(events.NewEmergencyRaised(alert))
}

// AcknowledgeEmergency dismisses the overlay; only an explicit operator
// action does.
func (a *alertScheduler) AcknowledgeEmergency() {
	if a == nil {
		return
	}

	a.mu.Lock()
	wasActive := a.emergencyActive
	a.emergencyActive = false
	emit := a.emit
	a.mu.Unlock()

	if wasActive {
		emit(events.NewEmergencyAcknowledged())
	}
}

// RaiseCoaching replaces any visible tip and arms its independent fade
// timer. Tips without feedback text are dropped.
func (a *alertScheduler) RaiseCoaching(coaching livecontext.Coaching) {
	if a == nil || coaching.Feedback == "" {
		return
	}

	a.mu.Lock()
	a.tasks.Cancel(a.coachingHandle)
	superseded := a.coaching != nil && !a.coaching.Fading
	a.coaching = &CoachingView{Coaching: coaching}
	a.coachingHandle = a.tasks.Schedule(a.fadeAfter, func() { a.fadeCoaching() })
	emit := a.emit
	a.mu.Unlock()

	if superseded {
		emit(events.NewCoachingFaded())
	}
	emit(events.NewCoachingRaised(coaching))
}

func (a *alertScheduler) fadeCoaching() {
	a.mu.Lock()
	if a.coaching == nil {
		a.mu.Unlock()
		return
	}
	a.coaching.Fading = true
	a.coachingHandle = ""
	emit := a.emit
	a.mu.Unlock()

	emit(events.NewCoachingFaded())
}

// Reset cancels pending fades and clears every visible surface without
// emitting; it runs only as part of session teardown.
func (a *alertScheduler) Reset() {
	if a == nil {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.tasks.Cancel(a.alertHandle)
	a.tasks.Cancel(a.coachingHandle)
	a.alert = nil
	a.alertHandle = ""
	a.coaching = nil
	a.coachingHandle = ""
	a.emergencyActive = false
}

func (a *alertScheduler) AlertView() *AlertView {
	if a == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.alert == nil {
		return nil
	}
	view := *a.alert
	return &view
}

func (a *alertScheduler) CoachingView() *CoachingView {
	if a == nil {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.coaching == nil {
		return nil
	}
	view := *a.coaching
	return &view
}

func (a *alertScheduler) EmergencyActive() bool {
	if a == nil {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.emergencyActive
}
