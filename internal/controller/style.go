package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

var (
	debugStyle   = lipgloss.NewStyle().Faint(true)
	outputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	stageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
)

// StyleFor maps a level to its display style.
func StyleFor(level m.Level) lipgloss.Style {
	switch level {
	case m.LevelDebug:
		return debugStyle
	case m.LevelOutput:
		return outputStyle
	case m.LevelInfo:
		return infoStyle
	case m.LevelSuccess:
		return successStyle
	case m.LevelWarn:
		return warnStyle
	case m.LevelError:
		return errorStyle
	}

	return lipgloss.NewStyle()
}

// Marker returns the short prefix printed before a line of the given level.
func Marker(level m.Level) string {
	switch level {
	case m.LevelDebug:
		return "[.]"
	case m.LevelOutput:
		return "   "
	case m.LevelInfo:
		return "[*]"
	case m.LevelSuccess:
		return "[+]"
	case m.LevelWarn:
		return "[!]"
	case m.LevelError:
		return "[x]"
	}

	return "[?]"
}

// RenderEvent formats one event as a single styled line.
func RenderEvent(event m.Event) string {
	style := StyleFor(event.Level)

	if event.Level == m.LevelOutput {
		return style.Render(Marker(event.Level) + " " + event.Text)
	}

	return style.Render(Marker(event.Level)) + " " + stageStyle.Render(event.Stage.String()) + " " + style.Render(event.Text)
}

// Visible reports whether an event is shown at the given verbosity.
func Visible(event m.Event, verbose bool) bool {
	return verbose || event.Level != m.LevelDebug
}
