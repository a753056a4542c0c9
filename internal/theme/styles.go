package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katiemcmillin/homework-cloner/internal/domain"
)

// Report styles
var (
	AssignmentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)
)

// Completion level styles
var (
	CriticalStyle = lipgloss.NewStyle().
			Foreground(ColorCritical)

	HealthyStyle = lipgloss.NewStyle().
			Foreground(ColorHealthy)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Clone status styles
var (
	ClonedStyle = lipgloss.NewStyle().
			Foreground(ColorCloned)

	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed)

	SkippedStyle = lipgloss.NewStyle().
			Foreground(ColorSkipped)
)

// LevelStyle returns the style for a completion level
func LevelStyle(level domain.CompletionLevel) lipgloss.Style {
	switch level {
	case domain.LevelCritical:
		return CriticalStyle
	case domain.LevelWarning:
		return WarningStyle
	default:
		return HealthyStyle
	}
}

// StatusStyle returns the style for a clone status
func StatusStyle(status domain.CloneStatus) lipgloss.Style {
	switch status {
	case domain.CloneStatusCloned:
		return ClonedStyle
	case domain.CloneStatusFailed:
		return FailedStyle
	default:
		return SkippedStyle
	}
}
