package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/cfgedit/internal/ui"
	"github.com/muurk/cfgedit/internal/version"
)

// AppName is shown in the container header
const AppName = "CFGEDIT"

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	ValidationErrorStyle = lipgloss.NewStyle().
				Foreground(ui.ErrorColor).
				Bold(true)

	LineStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ui.TextColor)

	SelectedLineStyle = lipgloss.NewStyle().
				Foreground(ui.SuccessColor).
				Bold(true)

	// ControlLineStyle is for the trailing Apply and Cancel lines
	ControlLineStyle = lipgloss.NewStyle().
				Foreground(ui.PrimaryColor)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			PaddingLeft(2)
)

// Cursor marks the highlighted line
const Cursor = "→ "

// RenderLine renders one selectable line with or without the cursor
func RenderLine(text string, selected, control bool) string {
	if selected {
		return SelectedLineStyle.Render(Cursor + text)
	}
	if control {
		return LineStyle.Render(ControlLineStyle.Render(text))
	}
	return LineStyle.Render(text)
}

// BuildHeaderContent creates the header with app name and version
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName)

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(version.Get().Version)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps the editor in a full-screen panel with a
// header and a footer pinned below the content. Without a known terminal
// size the content is returned with the footer appended.
func RenderApplicationContainer(content, footer string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= 0 || terminalHeight <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, content, "", footer)
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(footer),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(inner)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
