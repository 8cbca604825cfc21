package events

import "time"

const (
	// KindSessionStarted identifies session open.
	KindSessionStarted Kind = "session.started"
	// KindSessionEnded identifies session close with extraction results.
	KindSessionEnded Kind = "session.ended"
	// KindSessionNotice identifies a one-shot inline system message.
	KindSessionNotice Kind = "session.notice"
	// KindSessionClockTick identifies a session duration advance.
	KindSessionClockTick Kind = "session.clock_tick"
)

// SessionStarted marks a session being opened.
type SessionStarted struct {
	Base
	SessionID   string
	CallerID    string
	IsReturning bool
}

// NewSessionStarted creates a session started event.
func NewSessionStarted(sessionID, callerID string, isReturning bool) SessionStarted {
	return SessionStarted{Base: NewBase(KindSessionStarted), SessionID: sessionID, CallerID: callerID, IsReturning: isReturning}
}

// SessionEnded marks a session being closed.
type SessionEnded struct {
	Base
	SessionID string
}

// NewSessionEnded creates a session ended event.
func NewSessionEnded(sessionID string) SessionEnded {
	return SessionEnded{Base: NewBase(KindSessionEnded), SessionID: sessionID}
}

// SessionNotice carries a one-shot inline system message.
type SessionNotice struct {
	Base
	Notice string
}

// NewSessionNotice creates a session notice event.
func NewSessionNotice(notice string) SessionNotice {
	return SessionNotice{Base: NewBase(KindSessionNotice), Notice: notice}
}

// SessionClockTick carries the elapsed session duration.
type SessionClockTick struct {
	Base
	Elapsed time.Duration
}

// NewSessionClockTick creates a session clock tick event.
func NewSessionClockTick(elapsed time.Duration) SessionClockTick {
	return SessionClockTick{Base: NewBase(KindSessionClockTick), Elapsed: elapsed}
}
