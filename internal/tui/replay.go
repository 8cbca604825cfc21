package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Gentle-mann/crisis-memory-bridge/core/replay"
)

// ReplayMsg carries one replayed message into the update loop; the program
// owner forwards it from the scheduler's render callback.
type ReplayMsg struct {
	Message replay.Message
}

// ReplayStateMsg reports play/pause flips and completion.
type ReplayStateMsg struct {
	Playing  bool
	Complete bool
}

// ReplayModel plays back a stored session at conversational pace.
type ReplayModel struct {
	scheduler *replay.Scheduler
	title     string

	viewport viewport.Model
	width    int
	height   int
	ready    bool

	shown    []replay.Message
	playing  bool
	complete bool
	quitting bool
}

// NewReplayModel wraps a loaded scheduler. The caller wires the scheduler's
// callbacks to Program.Send before running the program.
func NewReplayModel(scheduler *replay.Scheduler, title string) ReplayModel {
	return ReplayModel{scheduler: scheduler, title: title}
}

func (m ReplayModel) Init() tea.Cmd {
	return nil
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = msg.Height - 4
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.scheduler.Close()
			m.quitting = true
			return m, tea.Quit
		case " ":
			if m.playing {
				m.scheduler.Pause()
			} else {
				m.scheduler.Play()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case ReplayMsg:
		m.shown = append(m.shown, msg.Message)
		m.refresh()
		return m, nil

	case ReplayStateMsg:
		m.playing = msg.Playing
		if msg.Complete {
			m.complete = true
			m.playing = false
		}
		return m, nil
	}

	return m, nil
}

func (m *ReplayModel) refresh() {
	if !m.ready {
		return
	}

	width := m.viewport.Width
	var lines []string
	for _, message := range m.shown {
		var rendered string
		switch message.Role {
		case replay.RoleVolunteer:
			rendered = volunteerStyle.Render("Volunteer: ") + message.Content
		case replay.RoleCaller:
			rendered = callerStyle.Render("Caller: ") + message.Content
		}
		lines = append(lines, wordwrap.String(rendered, width))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading replay..."
	}

	state := "paused"
	if m.playing {
		state = "playing"
	}
	if m.complete {
		state = "complete"
	}

	header := headerStyle.Render(fmt.Sprintf("REPLAY %s | %d/%d | %s",
		m.title, m.scheduler.Cursor(), m.scheduler.Len(), state))
	footer := statusStyle.Render("space play/pause | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), footer)
}
