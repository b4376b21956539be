package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#F97316"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	housingStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#4A4A4A"})

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	nearStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#D4D4D4"})

	farStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"})

	rollerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9A5B2E", Dark: "#B87333"})

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
			Align(lipgloss.Center)

	disabledButtonStyle = buttonStyle.
				BorderForeground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#333333"}).
				Foreground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"})

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#777777", Dark: "#777777"})

	addToStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#D4D4D4"})

	cartStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	ledOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"})

	ledBusyStyle = lipgloss.NewStyle().
			Foreground(accent)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
