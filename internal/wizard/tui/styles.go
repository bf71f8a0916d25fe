package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opendeck-tools/opendeck-cfg/internal/version"
)

// Application branding constants
const (
	AppName   = "OPENDECK BUTTON CONFIGURATION WIZARD"
	GitHubURL = "github.com/opendeck-tools/opendeck-cfg"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor   = lipgloss.Color("#FFFFFF") // White
	SubtleColor = lipgloss.Color("#626262") // Gray
)

// Common styles
var (
	// Title style - bold, colored header line
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style for the version/URL line under the title
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label style (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Field label style (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor)

	// Success box style
	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)
)
