package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — clinical, restrained
var (
	Primary = lipgloss.Color("#0EA5E9") // Sky Blue
	Success = lipgloss.Color("#22C55E") // Green
	Warn    = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Label = lipgloss.NewStyle().
		Foreground(TextDim)

	Value = lipgloss.NewStyle().
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success)

	Caution = lipgloss.NewStyle().
		Foreground(Warn)

	Bad = lipgloss.NewStyle().
		Foreground(Error)
)
