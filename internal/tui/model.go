// Package tui renders the volunteer workspace as a terminal UI: transcript,
// live context panel, transient alerts, and the emergency overlay.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	bridge "github.com/Gentle-mann/crisis-memory-bridge/core"
	"github.com/Gentle-mann/crisis-memory-bridge/core/events"
)

// EventMsg carries a bridge event into the update loop. The program owner
// forwards events with Program.Send so every state change renders.
type EventMsg struct {
	Event events.Event
}

type exportedMsg struct {
	path string
	err  error
}

type sessionEndedMsg struct {
	summary string
	err     error
}

// Model is the Bubble Tea model for the live session workspace.
type Model struct {
	bridge *bridge.Bridge

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	view    bridge.View
	elapsed time.Duration
	status  string

	exporter func(transcript string) (string, error)
	quitting bool
}

// NewModel builds the workspace model around a started bridge. exporter
// persists a rendered transcript and returns the written path; nil disables
// the export key.
func NewModel(b *bridge.Bridge, exporter func(transcript string) (string, error)) Model {
	input := textinput.New()
	input.Placeholder = "Type your response..."
	input.CharLimit = 2000
	input.Focus()

	loadingSpinner := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		bridge:   b,
		input:    input,
		spinner:  loadingSpinner,
		view:     b.Snapshot(),
		exporter: exporter,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - chromeHeight
		if contentHeight < 3 {
			contentHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(transcriptWidth(msg.Width), contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = transcriptWidth(msg.Width)
			m.viewport.Height = contentHeight
		}
		m.refreshTranscript()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case exportedMsg:
		if msg.err != nil {
			m.status = "Export failed: " + msg.err.Error()
		} else {
			m.status = "Transcript exported to " + msg.path
		}
		return m, nil

	case sessionEndedMsg:
		if msg.err != nil {
			m.status = "End session failed: " + msg.err.Error()
			return m, nil
		}
		m.status = msg.summary
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view.EmergencyActive {
		// The overlay is modal; only acknowledgement gets through.
		if msg.String() == "enter" || msg.String() == "esc" {
			m.bridge.AcknowledgeEmergency()
			m.view = m.bridge.Snapshot()
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		message := m.input.Value()
		if err := m.bridge.SendMessage(message); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.input.Reset()
		m.view = m.bridge.Snapshot()
		m.refreshTranscript()
		return m, nil

	case "ctrl+e":
		b := m.bridge
		return m, func() tea.Msg {
			result, err := b.EndSession()
			if err != nil {
				return sessionEndedMsg{err: err}
			}
			return sessionEndedMsg{summary: "Session ended: " + result.ExtractedMemories.SessionSummary}
		}

	case "ctrl+x":
		if m.exporter == nil {
			return m, nil
		}
		transcript, err := m.bridge.ExportTranscript(time.Now())
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		exporter := m.exporter
		return m, func() tea.Msg {
			path, err := exporter(transcript)
			return exportedMsg{path: path, err: err}
		}

	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleEvent(event events.Event) (tea.Model, tea.Cmd) {
	if tick, ok := event.(events.SessionClockTick); ok {
		m.elapsed = tick.Elapsed
		return m, nil
	}

	m.view = m.bridge.Snapshot()
	m.refreshTranscript()

	if notice, ok := event.(events.SessionNotice); ok {
		m.status = notice.Notice
	}
	return m, nil
}

func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
