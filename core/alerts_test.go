package bridge

import (
	"sync"
	"testing"
	"time"

	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *eventRecorder) record(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *eventRecorder) kinds() []events.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]events.Kind, 0, len(r.events))
	for _, event := range r.events {
		kinds = append(kinds, event.Kind())
	}
	return kinds
}

func (r *eventRecorder) count(kind events.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, event := range r.events {
		if event.Kind() == kind {
			n++
		}
	}
	return n
}

func newTestAlertScheduler(t *testing.T, recorder *eventRecorder) *alertScheduler {
	t.Helper()

	tasks := newTaskScheduler()
	t.Cleanup(tasks.Close)

	alerts := newAlertScheduler(tasks, recorder.record)
	alerts.dismissAfter = 10 * time.Millisecond
	alerts.removeAfter = 5 * time.Millisecond
	alerts.fadeAfter = 10 * time.Millisecond
	return alerts
}

func waitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestRiskAlertFadesThenDisappears(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)

	alerts.RaiseRiskAlert(livecontext.RiskAlert{From: livecontext.RiskLow, To: livecontext.RiskModerate})

	view := alerts.AlertView()
	if view == nil || view.Fading {
		t.Fatalf("expected a fresh visible alert, got %+v", view)
	}

	waitFor(t, time.Second, func() bool {
		v := alerts.AlertView()
		return v != nil && v.Fading
	})
	waitFor(t, time.Second, func() bool { return alerts.AlertView() == nil })

	if got := recorder.count(events.KindRiskAlertRaised); got != 1 {
		t.Fatalf("expected one raise event, got %d", got)
	}
	if got := recorder.count(events.KindRiskAlertDismissed); got != 1 {
		t.Fatalf("expected one dismissal event, got %d", got)
	}
}

func TestRiskAlertIsSupersededNotStacked(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)
	alerts.dismissAfter = time.Hour

	alerts.RaiseRiskAlert(livecontext.RiskAlert{From: livecontext.RiskLow, To: livecontext.RiskModerate})
	alerts.RaiseRiskAlert(livecontext.RiskAlert{From: livecontext.RiskModerate, To: livecontext.RiskHigh})

	view := alerts.AlertView()
	if view == nil || view.Alert.To != livecontext.RiskHigh {
		t.Fatalf("expected the newer alert visible, got %+v", view)
	}
	if view.Fading {
		t.Fatalf("expected the superseding alert to restart fresh")
	}
}

func TestEmergencyRearmsOnEveryEscalationToHigh(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)

	alerts.RaiseEmergency(livecontext.RiskAlert{From: livecontext.RiskModerate, To: livecontext.RiskHigh})
	if !alerts.EmergencyActive() {
		t.Fatalf("expected emergency armed")
	}

	alerts.AcknowledgeEmergency()
	if alerts.EmergencyActive() {
		t.Fatalf("expected acknowledgement to clear the overlay")
	}

	alerts.RaiseEmergency(livecontext.RiskAlert{From: livecontext.RiskHigh, To: livecontext.RiskHigh})
	if !alerts.EmergencyActive() {
		t.Fatalf("expected a later escalation to re-arm after acknowledgement")
	}

	if got := recorder.count(events.KindEmergencyRaised); got != 2 {
		t.Fatalf("expected two emergency events, got %d", got)
	}
}

func TestAcknowledgeWithoutEmergencyEmitsNothing(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)

	alerts.AcknowledgeEmergency()

	if got := recorder.count(events.KindEmergencyAcknowledged); got != 0 {
		t.Fatalf("expected no acknowledgement event without an armed overlay, got %d", got)
	}
}

func TestCoachingFadesButStaysVisible(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)

	alerts.RaiseCoaching(livecontext.Coaching{Score: livecontext.ScoreGood, Feedback: "nice reflection"})

	waitFor(t, time.Second, func() bool {
		v := alerts.CoachingView()
		return v != nil && v.Fading
	})

	if view := alerts.CoachingView(); view == nil || view.Coaching.Feedback != "nice reflection" {
		t.Fatalf("expected the faded tip to remain visible, got %+v", view)
	}
}

func TestCoachingWithoutFeedbackIsDropped(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)

	alerts.RaiseCoaching(livecontext.Coaching{Score: livecontext.ScoreGood})

	if alerts.CoachingView() != nil {
		t.Fatalf("expected feedback-less coaching dropped")
	}
	if got := recorder.count(events.KindCoachingRaised); got != 0 {
		t.Fatalf("expected no coaching event, got %d", got)
	}
}

func TestAlertSchedulerResetClearsSilently(t *testing.T) {
	recorder := &eventRecorder{}
	alerts := newTestAlertScheduler(t, recorder)
	alerts.dismissAfter = time.Hour
	alerts.fadeAfter = time.Hour

	alerts.RaiseRiskAlert(livecontext.RiskAlert{From: livecontext.RiskLow, To: livecontext.RiskHigh})
	alerts.RaiseEmergency(livecontext.RiskAlert{From: livecontext.RiskLow, To: livecontext.RiskHigh})
	alerts.RaiseCoaching(livecontext.Coaching{Score: livecontext.ScoreCaution, Feedback: "check in"})

	eventsBefore := len(recorder.kinds())
	alerts.Reset()

	if alerts.AlertView() != nil || alerts.CoachingView() != nil || alerts.EmergencyActive() {
		t.Fatalf("expected all surfaces cleared on reset")
	}
	if got := len(recorder.kinds()); got != eventsBefore {
		t.Fatalf("expected reset to emit nothing, got %d extra events", got-eventsBefore)
	}

	// Pending fades must not land on the fresh state either.
	time.Sleep(20 * time.Millisecond)
	if got := len(recorder.kinds()); got != eventsBefore {
		t.Fatalf("expected no late timer events after reset, got %d extra", got-eventsBefore)
	}
}
