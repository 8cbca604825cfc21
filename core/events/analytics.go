package events

import "github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"

// KindLiveContextApplied identifies a wholesale live-context replacement.
const KindLiveContextApplied Kind = "analytics.live_context_applied"

// LiveContextApplied carries the freshly merged context snapshot.
type LiveContextApplied struct {
	Base
	Context livecontext.Context
}

// NewLiveContextApplied creates a live context applied event.
func NewLiveContextApplied(ctx livecontext.Context) LiveContextApplied {
	return LiveContextApplied{Base: NewBase(KindLiveContextApplied), Context: ctx}
}
