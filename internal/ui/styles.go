package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primary   = lipgloss.Color("#7C3AED")
	secondary = lipgloss.Color("#A78BFA")
	success   = lipgloss.Color("#10B981")
	danger    = lipgloss.Color("#EF4444")
	muted     = lipgloss.Color("#6B7280")
	text      = lipgloss.Color("#F9FAFB")
	textDim   = lipgloss.Color("#9CA3AF")

	// Month view styles
	monthHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primary).
				Padding(0, 1)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(7).
			Align(lipgloss.Center)

	dayStyle         = lipgloss.NewStyle().Width(7).Align(lipgloss.Center)
	selectedDayStyle = dayStyle.Background(primary).Foreground(text)
	todayStyle       = dayStyle.Bold(true).Foreground(secondary)
	labeledDotStyle  = lipgloss.NewStyle().Foreground(success)

	// Detail panel styles
	detailDateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(text)

	detailLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(success)

	detailNoteStyle = lipgloss.NewStyle().
			Foreground(textDim)

	emptyDayStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(muted)

	errorStyle = lipgloss.NewStyle().Foreground(danger)

	helpStyle    = lipgloss.NewStyle().Foreground(muted)
	helpKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(secondary)

	confirmTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(danger)

	noteTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1)
)
