package main

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	caution   = lipgloss.AdaptiveColor{Light: "#D08700", Dark: "#F3C13A"}
	danger    = lipgloss.AdaptiveColor{Light: "#C8102E", Dark: "#FF5F5F"}

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	// Slider handles.
	handleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#585858", Dark: "#D9DCCF"}).
			Bold(true)
	handleActiveStyle = handleStyle.
				Foreground(highlight)

	// Dual-slider track segments: below low, between, above high.
	segmentShortStyle  = lipgloss.NewStyle().Foreground(danger)
	segmentOKStyle     = lipgloss.NewStyle().Foreground(special)
	segmentExcessStyle = lipgloss.NewStyle().Foreground(caution)

	// Single-slider track: filled up to the handle, empty after.
	segmentFillStyle  = lipgloss.NewStyle().Foreground(highlight)
	segmentEmptyStyle = lipgloss.NewStyle().Foreground(subtle)

	// Settings panel chrome.
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2)
	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// Month selector.
	selectStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(subtle).
			Padding(0, 1)
	selectOpenStyle = selectStyle.
			BorderForeground(highlight)
	selectItemStyle = lipgloss.NewStyle().PaddingLeft(2)
	selectChosenStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(special).
				Bold(true)

	// Confirmation prompt.
	confirmStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(caution).
			Padding(1, 2)
	confirmDestructiveStyle = confirmStyle.
				BorderForeground(danger)
	confirmTitleStyle = lipgloss.NewStyle().Bold(true)

	// Status line, per notification kind.
	statusInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"})
	statusSuccessStyle = lipgloss.NewStyle().Foreground(special)
	statusErrorStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
	statusWarningStyle = lipgloss.NewStyle().Foreground(caution)
)
