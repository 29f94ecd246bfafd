package main

import "github.com/charmbracelet/lipgloss"

// Terminal output styles shared by all commands.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7c6df2")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f2c14e"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#34d399"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171")).
			Bold(true)
)
