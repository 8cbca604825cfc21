package bridge

import (
	"context"
	"time"

	"github.com/Gentle-mann/crisis-memory-bridge/core/api"
	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
	"github.com/Gentle-mann/crisis-memory-bridge/core/stream"
)

type BridgeOption func(*Bridge)

// Backend is the REST collaborator surface the Bridge consumes.
type Backend interface {
	StartSession(ctx context.Context, req api.StartSessionRequest) (*api.StartSessionResult, error)
	EndSession(ctx context.Context, sessionID string) (*api.EndSessionResult, error)
	Timeline(ctx context.Context, callerID string) (*api.Timeline, error)
}

// WithBackend wires the session backend client.
func WithBackend(backend Backend) BridgeOption {
	return func(b *Bridge) {
		if backend != nil {
			b.backend = backend
		}
	}
}

// WithStreamOpener wires the per-turn frame stream transport.
func WithStreamOpener(opener stream.Opener) BridgeOption {
	return func(b *Bridge) {
		if opener != nil {
			b.streamOpener = opener
		}
	}
}

// WithTonePort wires notification tones; absent, tones are silent.
func WithTonePort(port TonePort) BridgeOption {
	return func(b *Bridge) {
		if port != nil {
			b.tone = port
		}
	}
}

// WithVoicePort wires voice capture; absent, the voice control is reported
// unavailable.
func WithVoicePort(port VoicePort) BridgeOption {
	return func(b *Bridge) { b.voice = port }
}

type RunOptions struct {
	onEvent func(events.Event)

	onReplySegment func(segment string)
	onReplyFinal   func(reply string)

	onTurnStarted   func(message string)
	onTurnCompleted func()
	onTurnFailed    func(err error)

	onLiveContext func(ctx livecontext.Context)

	onRiskAlert             func(alert livecontext.RiskAlert)
	onRiskAlertDismissed    func()
	onEmergency             func(alert livecontext.RiskAlert)
	onEmergencyAcknowledged func()

	onCoaching      func(coaching livecontext.Coaching)
	onCoachingFaded func()

	onSuggestions func(suggestions []string)
	onNotice      func(notice string)
	onClockTick   func(elapsed time.Duration)
}

type RunOption func(*RunOptions)

// OnEvent receives every emitted event; the typed callbacks below are
// conveniences layered over the same stream.
func OnEvent(callback func(events.Event)) RunOption {
	return func(o *RunOptions) { o.onEvent = callback }
}

func OnReplySegment(callback func(segment string)) RunOption {
	return func(o *RunOptions) { o.onReplySegment = callback }
}

func OnReplyFinal(callback func(reply string)) RunOption {
	return func(o *RunOptions) { o.onReplyFinal = callback }
}

func OnTurnStarted(callback func(message string)) RunOption {
	return func(o *RunOptions) { o.onTurnStarted = callback }
}

func OnTurnCompleted(callback func()) RunOption {
	return func(o *RunOptions) { o.onTurnCompleted = callback }
}

func OnTurnFailed(callback func(err error)) RunOption {
	return func(o *RunOptions) { o.onTurnFailed = callback }
}

func OnLiveContext(callback func(ctx livecontext.Context)) RunOption {
	return func(o *RunOptions) { o.onLiveContext = callback }
}

func OnRiskAlert(callback func(alert livecontext.RiskAlert)) RunOption {
	return func(o *RunOptions) { o.onRiskAlert = callback }
}

func OnRiskAlertDismissed(callback func()) RunOption {
	return func(o *RunOptions) { o.onRiskAlertDismissed = callback }
}

func OnEmergency(callback func(alert livecontext.RiskAlert)) RunOption {
	return func(o *RunOptions) { o.onEmergency = callback }
}

func OnEmergencyAcknowledged(callback func()) RunOption {
	return func(o *RunOptions) { o.onEmergencyAcknowledged = callback }
}

func OnCoaching(callback func(coaching livecontext.Coaching)) RunOption {
	return func(o *RunOptions) { o.onCoaching = callback }
}

func OnCoachingFaded(callback func()) RunOption {
	return func(o *RunOptions) { o.onCoachingFaded = callback }
}

func OnSuggestions(callback func(suggestions []string)) RunOption {
	return func(o *RunOptions) { o.onSuggestions = callback }
}

func OnNotice(callback func(notice string)) RunOption {
	return func(o *RunOptions) { o.onNotice = callback }
}

func OnClockTick(callback func(elapsed time.Duration)) RunOption {
	return func(o *RunOptions) { o.onClockTick = callback }
}
