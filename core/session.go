package bridge

import (
	"time"

	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

// Role tags a transcript message with its speaker.
type Role string

const (
	RoleVolunteer Role = "volunteer"
	RoleCaller    Role = "caller"
	RoleSystem    Role = "system"
)

// Message is one transcript entry.
type Message struct {
	Role    Role
	Content string
}

// Session is the live state of one caller/volunteer conversation. It is
// owned exclusively by the Bridge and destroyed on end or reset.
type Session struct {
	ID            string
	CallerID      string
	VolunteerName string
	Language      string
	StartedAt     time.Time

	IsReturning bool
	Briefing    string
	Diff        *livecontext.SessionDiff

	transcript  []Message
	suggestions []string

	// sending is the sole gate for new turns: set before the streaming
	// request goes out, cleared on stream_end or terminal error, never left
	// set on any exit path.
	sending bool
}

// SessionView is a point-in-time snapshot of session state.
type SessionView struct {
	ID            string
	CallerID      string
	VolunteerName string
	Language      string
	StartedAt     time.Time
	IsReturning   bool
	Briefing      string
	Diff          *livecontext.SessionDiff

	Transcript  []Message
	Suggestions []string
	Sending     bool
}

func (s *Session) snapshot() SessionView {
	transcript := make([]Message, len(s.transcript))
	copy(transcript, s.transcript)

	suggestions := make([]string, len(s.suggestions))
	copy(suggestions, s.suggestions)

	var diff *livecontext.SessionDiff
	if s.Diff != nil {
		diffCopy := *s.Diff
		diff = &diffCopy
	}

	return SessionView{
		ID:            s.ID,
		CallerID:      s.CallerID,
		VolunteerName: s.VolunteerName,
		Language:      s.Language,
		StartedAt:     s.StartedAt,
		IsReturning:   s.IsReturning,
		Briefing:      s.Briefing,
		Diff:          diff,
		Transcript:    transcript,
		Suggestions:   suggestions,
		Sending:       s.sending,
	}
}

// appendMessage adds a transcript entry and returns its index; indices stay
// valid across later appends, unlike element pointers.
func (s *Session) appendMessage(role Role, content string) int {
	s.transcript = append(s.transcript, Message{Role: role, Content: content})
	return len(s.transcript) - 1
}
