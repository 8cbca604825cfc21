package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/Gentle-mann/crisis-memory-bridge/core/api"
	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
	"github.com/Gentle-mann/crisis-memory-bridge/core/stream"
)

var (
	// ErrNoBackend is returned by New when no session backend was wired.
	ErrNoBackend = errors.New("no session backend configured")
	// ErrNoStreamOpener is returned by New when no turn stream transport was
	// wired.
	ErrNoStreamOpener = errors.New("no stream transport configured")
	// ErrNoActiveSession is returned by operations that require a started
	// session.
	ErrNoActiveSession = errors.New("no active session")
	// ErrSessionActive is returned by StartSession while a session is live.
	ErrSessionActive = errors.New("session already active")
	// ErrTurnInFlight is returned by SendMessage while a previous turn is
	// still streaming.
	ErrTurnInFlight = errors.New("turn already in flight")
	// ErrVoiceUnavailable is returned by StartVoice when no voice port is
	// wired.
	ErrVoiceUnavailable = errors.New("voice capture unavailable")
)

// Bridge owns one conversation at a time: it starts sessions against the
// backend, streams turn frames, and reconciles them into transcript, live
// context, and alert state. All mutation funnels through a single mutex;
// frames of a turn are applied in arrival order by one consumer goroutine.
type Bridge struct {
	mu          sync.Mutex
	closeOnce   sync.Once
	baseContext context.Context

	backend      Backend
	streamOpener stream.Opener
	tone         TonePort
	voice        VoicePort

	emit eventEmitter

	session *Session
	merger  *livecontext.Merger
	alerts  *alertScheduler
	tasks   *taskScheduler

	// sessionContext parents every turn stream of the live session so Reset
	// cancels all of them at once, including streams of earlier turns still
	// waiting on delayed analytics.
	sessionContext context.Context
	sessionCancel  context.CancelFunc

	turnState   TurnState
	turn        *activeTurn
	clockHandle string

	voiceActive bool
}

// New assembles a Bridge. A backend and a stream transport are required;
// tone and voice ports are optional capabilities.
func New(opts ...BridgeOption) (*Bridge, error) {
	b := &Bridge{
		baseContext: context.Background(),
		tone:        noopTone{},
		emit:        noopEventEmitter,
		merger:      livecontext.NewMerger(),
		tasks:       newTaskScheduler(),
		turnState:   TurnIdle,
	}
	b.alerts = newAlertScheduler(b.tasks, func(event events.Event) { b.emitEvent(event) })

	for _, opt := range opts {
		opt(b)
	}

	if b.backend == nil {
		return nil, ErrNoBackend
	}
	if b.streamOpener == nil {
		return nil, ErrNoStreamOpener
	}
	return b, nil
}

// Run binds the lifetime context and event callbacks. It must be called once,
// before any session is started, and returns immediately; the Bridge is
// driven by its public methods afterwards.
func (b *Bridge) Run(ctx context.Context, opts ...RunOption) error {
	if b == nil {
		return errors.New("bridge is nil")
	}

	options := RunOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	b.mu.Lock()
	b.baseContext = ctx
	b.emit = newCallbackEventEmitter(options)
	b.mu.Unlock()

	context.AfterFunc(ctx, func() { b.Close() })
	return nil
}

func (b *Bridge) emitEvent(event events.Event) {
	b.mu.Lock()
	emit := b.emit
	b.mu.Unlock()
	emit(event)
}

// StartSession opens a backend session and seeds the workspace with the
// returning-caller briefing, session diff, and opening suggestions.
func (b *Bridge) StartSession(req api.StartSessionRequest) (*api.StartSessionResult, error) {
	if b == nil {
		return nil, errors.New("bridge is nil")
	}

	b.mu.Lock()
	if b.session != nil {
		b.mu.Unlock()
		return nil, ErrSessionActive
	}
	ctx := b.baseContext
	b.mu.Unlock()

	ctx, span := tracer.Start(ctx, "start session")
	defer span.End()

	result, err := b.backend.StartSession(ctx, req)
	if err != nil {
		err = fmt.Errorf("failed to start session: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend rejected session start")
		return nil, err
	}

	b.mu.Lock()
	if b.session != nil {
		b.mu.Unlock()
		return nil, ErrSessionActive
	}
	b.sessionContext, b.sessionCancel = context.WithCancel(b.baseContext)
	b.session = &Session{
		ID:            result.SessionID,
		CallerID:      req.CallerID,
		VolunteerName: req.VolunteerName,
		Language:      req.Language,
		StartedAt:     time.Now(),
		IsReturning:   result.IsReturning,
		Briefing:      result.Briefing,
		Diff:          result.SessionDiff,
		suggestions:   append([]string(nil), result.Suggestions...),
	}
	b.merger.Reset()
	b.turnState = TurnIdle
	b.turn = nil
	emit := b.emit
	b.mu.Unlock()

	b.scheduleClockTick()
	b.tone.PlayChime()

	emit(events.NewSessionStarted(result.SessionID, req.CallerID, result.IsReturning))
	if len(result.Suggestions) > 0 {
		emit(events.NewSuggestionsUpdated(result.Suggestions))
	}

	logger.InfoContext(ctx, "session started",
		"session_id", result.SessionID,
		"caller_id", req.CallerID,
		"is_returning", result.IsReturning,
	)
	return result, nil
}

func (b *Bridge) scheduleClockTick() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return
	}
	startedAt := b.session.StartedAt
	b.clockHandle = b.tasks.Schedule(time.Second, func() {
		b.emitEvent(events.NewSessionClockTick(time.Since(startedAt).Truncate(time.Second)))
		b.scheduleClockTick()
	})
}

// SendMessage starts a turn: the trimmed message is appended to the
// transcript, suggestions are cleared, and the frame stream is consumed on a
// dedicated goroutine until end of input. Empty messages are rejected
// silently; a turn already in flight is an error.
func (b *Bridge) SendMessage(message string) error {
	if b == nil {
		return errors.New("bridge is nil")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}

	b.mu.Lock()
	if b.session == nil {
		b.mu.Unlock()
		return ErrNoActiveSession
	}
	if b.session.sending {
		b.mu.Unlock()
		return ErrTurnInFlight
	}

	b.session.sending = true
	b.session.suggestions = nil
	b.session.appendMessage(RoleVolunteer, message)
	b.turnState = TurnSending
	turn := newActiveTurn(b.session)
	b.turn = turn

	sessionID := b.session.ID
	ctx := b.sessionContext
	emit := b.emit
	b.mu.Unlock()

	emit(events.NewSuggestionsUpdated(nil))
	emit(events.NewTurnStarted(message))

	go b.consumeTurnStream(ctx, turn, sessionID, message)
	return nil
}

func (b *Bridge) consumeTurnStream(ctx context.Context, turn *activeTurn, sessionID, message string) {
	ctx, span := tracer.Start(ctx, "consume turn stream")
	defer span.End()

	source, err := b.streamOpener.OpenTurnStream(ctx, sessionID, message)
	if err != nil {
		err = fmt.Errorf("failed to open turn stream: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "turn stream unavailable")
		b.failTurn(turn, err)
		return
	}
	defer source.Close()

	for frame, err := range source.Frames(ctx) {
		if err != nil {
			err = fmt.Errorf("turn stream failed: %w", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "turn stream failed")
			b.failTurn(turn, err)
			return
		}
		b.routeFrame(turn, frame)
	}

	b.finishStream(turn)
}

// EndSession closes the backend session and tears down live state. The
// extraction result is returned for display; on backend failure the session
// is kept so the operator can retry or reset explicitly.
func (b *Bridge) EndSession() (*api.EndSessionResult, error) {
	if b == nil {
		return nil, errors.New("bridge is nil")
	}

	b.mu.Lock()
	if b.session == nil {
		b.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	sessionID := b.session.ID
	ctx := b.baseContext
	b.mu.Unlock()

	ctx, span := tracer.Start(ctx, "end session")
	defer span.End()

	result, err := b.backend.EndSession(ctx, sessionID)
	if err != nil {
		err = fmt.Errorf("failed to end session: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend rejected session end")
		return nil, err
	}

	b.Reset()
	b.emitEvent(events.NewSessionEnded(sessionID))

	logger.InfoContext(ctx, "session ended", "session_id", sessionID)
	return result, nil
}

// Reset abandons the live session without calling the backend: the in-flight
// stream is cancelled, every pending timer is cancelled, and transcript,
// context, and alert state are destroyed atomically. No events are emitted
// for the torn-down state.
func (b *Bridge) Reset() {
	if b == nil {
		return
	}

	b.mu.Lock()
	if b.sessionCancel != nil {
		b.sessionCancel()
		b.sessionCancel = nil
		b.sessionContext = nil
	}
	b.session = nil
	b.turn = nil
	b.turnState = TurnIdle
	b.clockHandle = ""
	b.mu.Unlock()

	b.tasks.CancelAll()
	b.alerts.Reset()
	b.merger.Reset()
}

// Close tears down the Bridge permanently. Safe to call more than once.
func (b *Bridge) Close() {
	if b == nil {
		return
	}

	b.closeOnce.Do(func() {
		b.Reset()
		b.tasks.Close()
		_ = b.StopVoice()
	})
}

// AddNotice appends a system line to the transcript, for operator-facing
// notices that belong in the exported record.
func (b *Bridge) AddNotice(notice string) {
	if b == nil || notice == "" {
		return
	}

	b.mu.Lock()
	if b.session == nil {
		b.mu.Unlock()
		return
	}
	b.session.appendMessage(RoleSystem, notice)
	emit := b.emit
	b.mu.Unlock()

	emit(events.NewSessionNotice(notice))
}

// AcknowledgeEmergency dismisses the emergency overlay.
func (b *Bridge) AcknowledgeEmergency() {
	if b == nil {
		return
	}
	b.alerts.AcknowledgeEmergency()
}

// Timeline fetches the stored session history for a caller.
func (b *Bridge) Timeline(callerID string) (*api.Timeline, error) {
	if b == nil {
		return nil, errors.New("bridge is nil")
	}

	b.mu.Lock()
	ctx := b.baseContext
	b.mu.Unlock()
	return b.backend.Timeline(ctx, callerID)
}

// VoiceAvailable reports whether a voice port was wired.
func (b *Bridge) VoiceAvailable() bool {
	return b != nil && b.voice != nil
}

// StartVoice begins voice capture; transcripts are delivered through
// onTranscript ready to be sent as messages.
func (b *Bridge) StartVoice(onTranscript func(string)) error {
	if b == nil || b.voice == nil {
		return ErrVoiceUnavailable
	}

	b.mu.Lock()
	if b.voiceActive {
		b.mu.Unlock()
		return nil
	}
	b.voiceActive = true
	ctx := b.baseContext
	b.mu.Unlock()

	if err := b.voice.Start(ctx, onTranscript); err != nil {
		b.mu.Lock()
		b.voiceActive = false
		b.mu.Unlock()
		return fmt.Errorf("failed to start voice capture: %w", err)
	}
	return nil
}

// StopVoice halts voice capture if it was running.
func (b *Bridge) StopVoice() error {
	if b == nil || b.voice == nil {
		return nil
	}

	b.mu.Lock()
	wasActive := b.voiceActive
	b.voiceActive = false
	b.mu.Unlock()

	if !wasActive {
		return nil
	}
	return b.voice.Stop()
}

// View is a point-in-time snapshot of everything the operator surface
// renders.
type View struct {
	Session   *SessionView
	TurnState TurnState

	LiveContext     *livecontext.Context
	RiskHistory     []livecontext.RiskLevel
	Alert           *AlertView
	Coaching        *CoachingView
	EmergencyActive bool
}

// Snapshot assembles a consistent view of session, turn, context, and alert
// state.
func (b *Bridge) Snapshot() View {
	if b == nil {
		return View{TurnState: TurnIdle}
	}

	b.mu.Lock()
	view := View{TurnState: b.turnState}
	if b.session != nil {
		sessionView := b.session.snapshot()
		view.Session = &sessionView
	}
	b.mu.Unlock()

	view.LiveContext = b.merger.Current()
	view.RiskHistory = b.merger.RiskHistory()
	view.Alert = b.alerts.AlertView()
	view.Coaching = b.alerts.CoachingView()
	view.EmergencyActive = b.alerts.EmergencyActive()
	return view
}

// Performance summarizes the coaching feedback accumulated this session.
func (b *Bridge) Performance() livecontext.PerformanceSummary {
	if b == nil {
		return livecontext.PerformanceSummary{}
	}
	return livecontext.Summarize(b.merger.CoachingLog())
}
