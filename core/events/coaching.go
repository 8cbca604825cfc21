package events

import "github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"

const (
	// KindCoachingRaised identifies a newly visible coaching tip.
	KindCoachingRaised Kind = "coaching.raised"
	// KindCoachingFaded identifies fade-out or supersession of the visible tip.
	KindCoachingFaded Kind = "coaching.faded"
)

// CoachingRaised marks a coaching tip becoming visible.
type CoachingRaised struct {
	Base
	Coaching livecontext.Coaching
}

// NewCoachingRaised creates a coaching raised event.
func NewCoachingRaised(coaching livecontext.Coaching) CoachingRaised {
	return CoachingRaised{Base: NewBase(KindCoachingRaised), Coaching: coaching}
}

// CoachingFaded marks the visible tip fading out or being replaced.
type CoachingFaded struct{ Base }

// NewCoachingFaded creates a coaching faded event.
func NewCoachingFaded() CoachingFaded {
	return CoachingFaded{Base: NewBase(KindCoachingFaded)}
}
