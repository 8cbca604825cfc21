package bridge

import (
	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
)

type eventEmitter func(events.Event)

func noopEventEmitter(events.Event) {}

func newCallbackEventEmitter(opts RunOptions) eventEmitter {
	return func(event events.Event) {
		if opts.onEvent != nil {
			opts.onEvent(event)
		}

		switch typedEvent := event.(type) {
		case events.CallerReplySegment:
			if opts.onReplySegment != nil {
				opts.onReplySegment(typedEvent.Segment)
			}
		case events.CallerReplyFinal:
			if opts.onReplyFinal != nil {
				opts.onReplyFinal(typedEvent.Reply)
			}
		case events.TurnStarted:
			if opts.onTurnStarted != nil {
				opts.onTurnStarted(typedEvent.Message)
			}
		case events.TurnCompleted:
			if opts.onTurnCompleted != nil {
				opts.onTurnCompleted()
			}
		case events.TurnFailed:
			if opts.onTurnFailed != nil {
				opts.onTurnFailed(typedEvent.Err)
			}
		case events.LiveContextApplied:
			if opts.onLiveContext != nil {
				opts.onLiveContext(typedEvent.Context)
			}
		case events.RiskAlertRaised:
			if opts.onRiskAlert != nil {
				opts.onRiskAlert(typedEvent.Alert)
			}
		case events.RiskAlertDismissed:
			if opts.onRiskAlertDismissed != nil {
				opts.onRiskAlertDismissed()
			}
		case events.EmergencyRaised:
			if opts.onEmergency != nil {
				opts.onEmergency(typedEvent.Alert)
			}
		case events.EmergencyAcknowledged:
			if opts.onEmergencyAcknowledged != nil {
				opts.onEmergencyAcknowledged()
			}
		case events.CoachingRaised:
			if opts.onCoaching != nil {
				opts.onCoaching(typedEvent.Coaching)
			}
		case events.CoachingFaded:
			if opts.onCoachingFaded != nil {
				opts.onCoachingFaded()
			}
		case events.SuggestionsUpdated:
			if opts.onSuggestions != nil {
				opts.onSuggestions(typedEvent.Suggestions)
			}
		case events.SessionNotice:
			if opts.onNotice != nil {
				opts.onNotice(typedEvent.Notice)
			}
		case events.SessionClockTick:
			if opts.onClockTick != nil {
				opts.onClockTick(typedEvent.Elapsed)
			}
		}
	}
}
