package livecontext

import "sync"

// Merger folds analytics snapshots into session-scoped state. The displayed
// context is always the last full replacement; risk and coaching logs are
// append-only until Reset.
type Merger struct {
	mu sync.RWMutex

	current  *Context
	previous *Context

	riskHistory []RiskLevel
	coachingLog []Coaching
}

func NewMerger() *Merger {
	return &Merger{}
}

// Apply replaces the current context wholesale, retaining the prior snapshot
// for delta computation, and appends the reported risk level to the history
// when the analytics carried one.
func (m *Merger) Apply(ctx Context) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := ctx.Clone()
	m.previous = m.current
	m.current = &snapshot

	if ctx.RiskLevel.Known() {
		m.riskHistory = append(m.riskHistory, ctx.RiskLevel)
	}
}

// AppendCoaching records a coaching entry for the aggregate performance
// summary. Entries without feedback text carry nothing renderable and are
// dropped.
func (m *Merger) AppendCoaching(c Coaching) {
	if m == nil || c.Feedback == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.coachingLog = append(m.coachingLog, c)
}

// Current returns a copy of the last applied context, or nil before the
// first application.
func (m *Merger) Current() *Context {
	if m == nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	snapshot := m.current.Clone()
	return &snapshot
}

// RiskHistory returns a copy of the per-turn risk levels recorded so far.
func (m *Merger) RiskHistory() []RiskLevel {
	if m == nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]RiskLevel, len(m.riskHistory))
	copy(history, m.riskHistory)
	return history
}

// CoachingLog returns a copy of the recorded coaching entries.
func (m *Merger) CoachingLog() []Coaching {
	if m == nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	log := make([]Coaching, len(m.coachingLog))
	copy(log, m.coachingLog)
	return log
}

// Reset atomically drops all session-scoped state. Only valid between turns;
// the caller is responsible for not resetting mid-turn.
func (m *Merger) Reset() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	m.previous = nil
	m.riskHistory = nil
	m.coachingLog = nil
}
