package events

import "time"

// Kind names an event type. Kinds are namespaced by the session surface they
// touch ("turn_state.started", "risk_alert.raised") so receivers can match on
// the prefix alone.
type Kind string

// Event is implemented by every session event.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the kind and emission time shared by all session events. The
// timestamp is captured when the event is emitted, so delayed analytics
// events record when their frames actually arrived, not when they are read.
type Base struct {
	kind      Kind
	emittedAt time.Time
}

func NewBase(kind Kind) Base {
	return Base{kind: kind, emittedAt: time.Now()}
}

func (b Base) Kind() Kind {
	return b.kind
}

// Timestamp reports when the event was emitted.
func (b Base) Timestamp() time.Time {
	return b.emittedAt
}
