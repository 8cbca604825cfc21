package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	bridge "github.com/Gentle-mann/crisis-memory-bridge/core"
	"github.com/Gentle-mann/crisis-memory-bridge/core/livecontext"
)

// chromeHeight is the vertical space around the transcript viewport: header,
// suggestion row, coaching row, input, and status line.
const chromeHeight = 9

const contextPanelWidth = 34

func transcriptWidth(total int) int {
	width := total - contextPanelWidth - 4
	if width < 20 {
		width = total - 2
	}
	return width
}

func (m Model) View() string {
	if m.quitting {
		if m.status != "" {
			return m.status + "\n"
		}
		return ""
	}
	if !m.ready || m.view.Session == nil {
		return m.spinner.View() + " connecting..."
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderAlert(),
		m.viewport.View(),
		m.renderSuggestions(),
		m.renderCoaching(),
		m.renderInput(),
		statusStyle.Render(m.status),
	)

	var screen string
	if m.width >= contextPanelWidth+40 {
		screen = lipgloss.JoinHorizontal(lipgloss.Top, main, m.renderContextPanel())
	} else {
		screen = main
	}

	if m.view.EmergencyActive {
		return m.renderEmergencyOverlay(screen)
	}
	return screen
}

func (m Model) renderHeader() string {
	session := m.view.Session
	caller := session.CallerID
	if session.IsReturning {
		caller += " (returning)"
	}

	risk := "unknown"
	if m.view.LiveContext != nil && m.view.LiveContext.RiskLevel.Known() {
		risk = string(m.view.LiveContext.RiskLevel)
	}

	left := headerStyle.Render(fmt.Sprintf("Caller %s | %s | %s",
		caller, session.VolunteerName, formatElapsed(m.elapsed)))
	right := riskStyle(risk).Render("risk: " + risk)
	return lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", right)
}

func (m Model) renderTranscript() string {
	session := m.view.Session
	width := m.viewport.Width
	if width < 10 {
		width = 10
	}

	var lines []string
	for _, message := range session.Transcript {
		var rendered string
		switch message.Role {
		case bridge.RoleVolunteer:
			rendered = volunteerStyle.Render("You: ") + message.Content
		case bridge.RoleCaller:
			rendered = callerStyle.Render("Caller: ") + message.Content
		case bridge.RoleSystem:
			rendered = systemStyle.Render(message.Content)
		}
		lines = append(lines, wordwrap.String(rendered, width))
	}

	if m.view.TurnState == bridge.TurnSending {
		lines = append(lines, dimStyle.Render(m.spinner.View()+" waiting for reply..."))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSuggestions() string {
	session := m.view.Session
	if len(session.Suggestions) == 0 {
		return ""
	}

	chips := make([]string, 0, len(session.Suggestions))
	for _, suggestion := range session.Suggestions {
		chips = append(chips, suggestionStyle.Render(suggestion))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (m Model) renderCoaching() string {
	coaching := m.view.Coaching
	if coaching == nil {
		return ""
	}

	style := coachingStyle
	if coaching.Fading {
		style = coachingFadedStyle
	}
	text := coaching.Coaching.Feedback
	if coaching.Coaching.Technique != "" {
		text += " (" + coaching.Coaching.Technique + ")"
	}
	return style.Render(wordwrap.String(text, transcriptWidth(m.width)-4))
}

func (m Model) renderAlert() string {
	alert := m.view.Alert
	if alert == nil {
		return ""
	}

	text := fmt.Sprintf("RISK %s -> %s", alert.Alert.From, alert.Alert.To)
	if alert.Fading {
		return alertFadingStyle.Render(text)
	}
	return alertStyle.Render(text)
}

func (m Model) renderInput() string {
	if m.view.Session.Sending {
		return dimStyle.Render("sending...")
	}
	return m.input.View()
}

func (m Model) renderContextPanel() string {
	liveContext := m.view.LiveContext

	var sb strings.Builder
	sb.WriteString(panelTitleStyle.Render("LIVE CONTEXT") + "\n\n")

	if liveContext == nil {
		sb.WriteString(dimStyle.Render("No analytics yet."))
	} else {
		writePanelList(&sb, "Mood", []string{liveContext.CurrentMood})
		writePanelList(&sb, "Triggers", liveContext.Triggers)
		writePanelList(&sb, "Warnings", liveContext.Warnings)
		writePanelList(&sb, "What works", liveContext.EffectiveStrategies)
		writePanelList(&sb, "Key facts", liveContext.KeyFacts)
	}

	if arc := renderMoodArc(m.view.RiskHistory); arc != "" {
		sb.WriteString("\n" + panelTitleStyle.Render("RISK ARC") + "\n" + arc)
	}

	if diff := m.view.Session.Diff; !diff.Empty() {
		sb.WriteString("\n" + panelTitleStyle.Render("SINCE LAST SESSION") + "\n")
		writePanelList(&sb, "New info", diff.NewInfo)
		writePanelList(&sb, "Escalations", diff.Escalations)
		writePanelList(&sb, "New strategies", diff.NewStrategies)
	}

	if session := m.view.Session; session.Briefing != "" {
		sb.WriteString("\n" + panelTitleStyle.Render("BRIEFING") + "\n")
		sb.WriteString(wordwrap.String(session.Briefing, contextPanelWidth-4))
	}

	return panelStyle.Width(contextPanelWidth).Render(sb.String())
}

func writePanelList(sb *strings.Builder, title string, items []string) {
	filtered := items[:0:0]
	for _, item := range items {
		if item != "" {
			filtered = append(filtered, item)
		}
	}
	if len(filtered) == 0 {
		return
	}

	sb.WriteString(panelTitleStyle.Render(title) + "\n")
	for _, item := range filtered {
		sb.WriteString(wordwrap.String("- "+item, contextPanelWidth-4) + "\n")
	}
}

// renderMoodArc plots the risk history on a small character grid, high
// severity at the top.
func renderMoodArc(history []livecontext.RiskLevel) string {
	const (
		arcWidth  = 28
		arcHeight = 5
	)

	points := livecontext.MoodArc(history, arcWidth, arcHeight, 1)
	if points == nil {
		return ""
	}

	grid := make([][]rune, arcHeight)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", arcWidth))
	}
	for _, point := range points {
		x := int(point.X)
		y := int(point.Y)
		if x < 0 || x >= arcWidth || y < 0 || y >= arcHeight {
			continue
		}
		grid[y][x] = '*'
	}

	rows := make([]string, arcHeight)
	for y, row := range grid {
		rows[y] = string(row)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderEmergencyOverlay(screen string) string {
	box := emergencyStyle.Render(
		"EMERGENCY PROTOCOL\n\n" +
			"Caller risk has escalated to HIGH.\n" +
			"Follow the emergency checklist before continuing.\n\n" +
			"Press Enter to acknowledge.")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func formatElapsed(elapsed time.Duration) string {
	totalSeconds := int(elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
