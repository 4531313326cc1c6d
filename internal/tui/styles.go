package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/list-manager/internal/model"
)

var (
	colorText    = lipgloss.Color("#cdd6f4")
	colorMuted   = lipgloss.Color("#7f849c")
	colorBlue    = lipgloss.Color("#89b4fa")
	colorGreen   = lipgloss.Color("#a6e3a1")
	colorYellow  = lipgloss.Color("#f9e2af")
	colorRed     = lipgloss.Color("#f38ba8")
	colorSurface = lipgloss.Color("#313244")
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorBlue).Bold(true).MarginBottom(1)
	rowStyle      = lipgloss.NewStyle().Foreground(colorText)
	selectedStyle = lipgloss.NewStyle().Foreground(colorBlue).Background(colorSurface).Bold(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

var severityColors = map[model.Severity]lipgloss.Color{
	model.SeveritySuccess: colorGreen,
	model.SeverityInfo:    colorBlue,
	model.SeverityWarning: colorYellow,
	model.SeverityDanger:  colorRed,
}

func noticeStyle(s model.Severity) lipgloss.Style {
	c, ok := severityColors[s]
	if !ok {
		c = colorBlue
	}
	return lipgloss.NewStyle().
		Foreground(c).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(c).
		PaddingLeft(1)
}
