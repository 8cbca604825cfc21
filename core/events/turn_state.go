package events

const (
	// KindTurnStarted identifies acceptance of a volunteer message.
	KindTurnStarted Kind = "turn_state.started"
	// KindTurnCompleted identifies full settlement of a turn.
	KindTurnCompleted Kind = "turn_state.completed"
	// KindTurnFailed identifies a turn aborted on error.
	KindTurnFailed Kind = "turn_state.failed"
)

// TurnStarted marks that a volunteer message was accepted and is in flight.
type TurnStarted struct {
	Base
	Message string
}

// NewTurnStarted creates a turn started event.
func NewTurnStarted(message string) TurnStarted {
	return TurnStarted{Base: NewBase(KindTurnStarted), Message: message}
}

// TurnCompleted marks that the turn's analytics were applied.
type TurnCompleted struct{ Base }

// NewTurnCompleted creates a turn completed event.
func NewTurnCompleted() TurnCompleted {
	return TurnCompleted{Base: NewBase(KindTurnCompleted)}
}

// TurnFailed marks a turn aborted on a transport or response error.
type TurnFailed struct {
	Base
	Err error
}

// NewTurnFailed creates a turn failed event.
func NewTurnFailed(err error) TurnFailed {
	return TurnFailed{Base: NewBase(KindTurnFailed), Err: err}
}
