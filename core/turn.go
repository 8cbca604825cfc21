package bridge

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
	"github.com/Gentle-mann/crisis-memory-bridge/core/stream"
)

// TurnState is the lifecycle position of the in-flight turn.
type TurnState string

const (
	TurnIdle              TurnState = "idle"
	TurnSending           TurnState = "sending"
	TurnStreaming         TurnState = "streaming"
	TurnAwaitingAnalytics TurnState = "awaiting_analytics"
)

// activeTurn is the transient per-turn record between send and the terminal
// analytics event. The reply container is created exactly once, by the first
// token frame, or by stream_end when no token ever arrived. The session stamp
// pins delayed analytics to the session that produced them.
type activeTurn struct {
	id      string
	session *Session

	reply        strings.Builder
	replyCreated bool
	replyIndex   int

	failed bool
}

func newActiveTurn(session *Session) *activeTurn {
	return &activeTurn{id: uuid.NewString(), session: session, replyIndex: -1}
}

func (b *Bridge) routeFrame(turn *activeTurn, frame stream.Frame) {
	switch typedFrame := frame.(type) {
	case stream.TokenFrame:
		b.handleToken(turn, typedFrame.Content)
	case stream.StreamEndFrame:
		b.handleStreamEnd(turn, typedFrame.Reply)
	case stream.DoneFrame:
		b.handleDone(turn, typedFrame)
	default:
		// Unknown frame types are ignored without error.
	}
}

func (b *Bridge) handleToken(turn *activeTurn, content string) {
	b.mu.Lock()
	if b.turn != turn || b.session == nil {
		b.mu.Unlock()
		return
	}

	if !turn.replyCreated {
		turn.replyCreated = true
		turn.replyIndex = b.session.appendMessage(RoleCaller, "")
		b.turnState = TurnStreaming
	}
	turn.reply.WriteString(content)
	b.session.transcript[turn.replyIndex].Content += content
	emit := b.emit
	b.mu.Unlock()

	emit(events.NewCallerReplySegment(content))
}

func (b *Bridge) handleStreamEnd(turn *activeTurn, fallback string) {
	b.mu.Lock()
	if b.turn != turn || b.session == nil {
		b.mu.Unlock()
		return
	}

	var reply string
	if turn.replyCreated {
		reply = turn.reply.String()
	} else {
		// No token ever arrived: render the fallback as the single,
		// non-incremental reply.
		turn.replyCreated = true
		turn.replyIndex = b.session.appendMessage(RoleCaller, fallback)
		reply = fallback
	}

	b.turnState = TurnAwaitingAnalytics
	// Re-enable sending immediately; the operator is not blocked on slow
	// analytics.
	b.session.sending = false
	emit := b.emit
	b.mu.Unlock()

	emit(events.NewCallerReplyFinal(reply))
}

func (b *Bridge) handleDone(turn *activeTurn, frame stream.DoneFrame) {
	b.mu.Lock()
	// Analytics for a session that was ended or reset must land on nothing;
	// the live session may belong to a different caller by now.
	if b.session == nil || b.session != turn.session {
		b.mu.Unlock()
		return
	}

	// Analytics may arrive after a later turn has already started; they are
	// still merged, only the turn gating below is skipped.
	current := b.turn == turn
	if current {
		b.turnState = TurnIdle
		b.turn = nil
	}
	if current && frame.Suggestions != nil {
		b.session.suggestions = frame.Suggestions
	}
	emit := b.emit
	tone := b.tone
	b.mu.Unlock()

	b.merger.Apply(frame.LiveContext)
	emit(events.NewLiveContextApplied(frame.LiveContext.Clone()))

	if frame.Coaching != nil {
		b.merger.AppendCoaching(*frame.Coaching)
		b.alerts.RaiseCoaching(*frame.Coaching)
	}

	if frame.RiskAlert != nil {
		b.alerts.RaiseRiskAlert(*frame.RiskAlert)
		tone.PlayAlert()
		if frame.RiskAlert.To == livecontext.RiskHigh {
			b.alerts.RaiseEmergency(*frame.RiskAlert)
		}
	}

	if current && frame.Suggestions != nil {
		emit(events.NewSuggestionsUpdated(frame.Suggestions))
	}
	if current {
		emit(events.NewTurnCompleted())
	}
}

// finishStream settles the turn when the underlying read completes. End of
// input before stream_end is a transport failure; after stream_end it simply
// returns the machine to idle whether or not analytics ever arrived.
func (b *Bridge) finishStream(turn *activeTurn) {
	b.mu.Lock()
	if b.turn != turn || b.session == nil {
		b.mu.Unlock()
		return
	}

	if b.turnState == TurnSending || b.turnState == TurnStreaming {
		b.mu.Unlock()
		b.failTurn(turn, fmt.Errorf("stream ended before reply completion"))
		return
	}

	b.turnState = TurnIdle
	b.turn = nil
	b.mu.Unlock()
}

// failTurn surfaces a turn-level failure exactly once: input is re-enabled,
// one inline notice is shown, and no retry is attempted.
func (b *Bridge) failTurn(turn *activeTurn, err error) {
	b.mu.Lock()
	if turn.failed || b.turn != turn || b.session == nil {
		b.mu.Unlock()
		return
	}

	turn.failed = true
	b.session.sending = false
	b.turnState = TurnIdle
	b.turn = nil
	b.session.appendMessage(RoleSystem, "Error: "+err.Error())
	emit := b.emit
	b.mu.Unlock()

	emit(events.NewTurnFailed(err))
	emit(events.NewSessionNotice("Error: " + err.Error()))
}
