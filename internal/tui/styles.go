package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")).
			Padding(0, 1)

	volunteerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	callerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))
	systemStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)

	alertFadingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("131")).
				Padding(0, 1)

	coachingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("114")).
			PaddingLeft(1)

	coachingFadedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("240")).
				PaddingLeft(1)

	emergencyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("88")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 3)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))

	riskStyles = map[string]lipgloss.Style{
		"low":      lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		"moderate": lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		"high":     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}

	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
)

func riskStyle(level string) lipgloss.Style {
	if style, ok := riskStyles[level]; ok {
		return style
	}
	return dimStyle
}
