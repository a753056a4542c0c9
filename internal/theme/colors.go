package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - assignment names
)

// Completion level colors
const (
	ColorCritical Color = "1" // Red - below the red threshold
	ColorHealthy  Color = "2" // Green - above the yellow threshold
	ColorWarning  Color = "3" // Yellow - between the thresholds
)

// Clone status colors
const (
	ColorCloned  Color = "2" // Green
	ColorFailed  Color = "1" // Red
	ColorSkipped Color = "8" // Gray
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)
