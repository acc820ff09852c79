package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	MatchedColor  = lipgloss.Color("2") // green
	MissingColor  = lipgloss.Color("3") // yellow
	ConflictColor = lipgloss.Color("1") // red
	MutedColor    = lipgloss.Color("8")
	PathColor     = lipgloss.Color("6") // cyan
)

// Status styles
var (
	MatchedStyle = lipgloss.NewStyle().
			Foreground(MatchedColor).
			Bold(true)

	MissingStyle = lipgloss.NewStyle().
			Foreground(MissingColor).
			Bold(true)

	ConflictStyle = lipgloss.NewStyle().
			Foreground(ConflictColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ConflictColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)
