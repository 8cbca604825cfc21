// Package replay plays a finished session's message log back one message at
// a time, with fixed role-dependent pacing and pause/resume over a retained
// cursor.
package replay

import (
	"sync"
	"time"
)

// Role tags a replayed message with its original speaker.
type Role string

const (
	RoleCaller    Role = "caller"
	RoleVolunteer Role = "volunteer"
)

// Message is one entry of the immutable replay log.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

const (
	defaultCallerDelay    = 1500 * time.Millisecond
	defaultVolunteerDelay = 800 * time.Millisecond
)

// Scheduler steps through a loaded message log. Pausing retains the cursor;
// loading a new log always resets it. The log never wraps: reaching the end
// stops playback and marks completion.
type Scheduler struct {
	mu sync.Mutex

	messages []Message
	cursor   int
	playing  bool
	complete bool
	closed   bool

	// generation invalidates timer steps scheduled before a pause, stop, or
	// reload so a late-firing timer cannot render a stale message.
	generation uint64
	timer      *time.Timer

	callerDelay    time.Duration
	volunteerDelay time.Duration

	render     func(Message)
	onPlaying  func(bool)
	onComplete func()
}

type SchedulerOption func(*Scheduler)

// WithPacing overrides the fixed per-role delays.
func WithPacing(callerDelay, volunteerDelay time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if callerDelay > 0 {
			s.callerDelay = callerDelay
		}
		if volunteerDelay > 0 {
			s.volunteerDelay = volunteerDelay
		}
	}
}

// WithPlayingStateCallback reports play/pause indicator changes.
func WithPlayingStateCallback(onPlaying func(bool)) SchedulerOption {
	return func(s *Scheduler) {
		if onPlaying != nil {
			s.onPlaying = onPlaying
		}
	}
}

// WithCompletionCallback reports the log being exhausted.
func WithCompletionCallback(onComplete func()) SchedulerOption {
	return func(s *Scheduler) {
		if onComplete != nil {
			s.onComplete = onComplete
		}
	}
}

func NewScheduler(render func(Message), opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		callerDelay:    defaultCallerDelay,
		volunteerDelay: defaultVolunteerDelay,
		render:         render,
		onPlaying:      func(bool) {},
		onComplete:     func() {},
	}
	if s.render == nil {
		s.render = func(Message) {}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the log and resets the cursor to the start, cancelling any
// pending step. The previous log is discarded.
func (s *Scheduler) Load(messages []Message) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.messages = make([]Message, len(messages))
	copy(s.messages, messages)
	s.cursor = 0
	s.complete = false
	s.setPlayingLocked(false)
}

// Play starts or resumes playback from the retained cursor. It is a no-op
// while already playing, after completion, or after Close.
func (s *Scheduler) Play() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.playing || s.cursor >= len(s.messages) {
		return
	}

	s.setPlayingLocked(true)
	s.scheduleNextLocked()
}

// Pause halts the pending step without moving the cursor.
func (s *Scheduler) Pause() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.setPlayingLocked(false)
}

// Stop cancels any pending step and resets the play indicator. The cursor is
// retained; only Load resets it.
func (s *Scheduler) Stop() {
	s.Pause()
}

// Close stops playback permanently.
func (s *Scheduler) Close() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.setPlayingLocked(false)
	s.closed = true
}

// Playing reports whether a step is currently scheduled.
func (s *Scheduler) Playing() bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Complete reports whether the log has been exhausted.
func (s *Scheduler) Complete() bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// Cursor returns the index of the next message to render.
func (s *Scheduler) Cursor() int {
	if s == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Len returns the loaded log length.
func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func (s *Scheduler) scheduleNextLocked() {
	next := s.messages[s.cursor]
	generation := s.generation
	s.timer = time.AfterFunc(s.delayFor(next.Role), func() { s.step(generation) })
}

func (s *Scheduler) step(generation uint64) {
	s.mu.Lock()

	if s.closed || !s.playing || generation != s.generation || s.cursor >= len(s.messages) {
		s.mu.Unlock()
		return
	}

	message := s.messages[s.cursor]
	s.cursor++
	finished := s.cursor >= len(s.messages)
	if finished {
		s.complete = true
		s.setPlayingLocked(false)
	} else {
		s.scheduleNextLocked()
	}
	render := s.render
	onComplete := s.onComplete
	s.mu.Unlock()

	render(message)
	if finished {
		onComplete()
	}
}

func (s *Scheduler) cancelPendingLocked() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) setPlayingLocked(playing bool) {
	if s.playing == playing {
		return
	}
	s.playing = playing
	s.onPlaying(playing)
}

func (s *Scheduler) delayFor(role Role) time.Duration {
	if role == RoleCaller {
		return s.callerDelay
	}
	return s.volunteerDelay
}
