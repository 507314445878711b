package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session status colors
const (
	ColorInitializing Color = "33"  // Blue
	ColorKilled       Color = "8"   // Gray
	ColorReady        Color = "3"   // Yellow
	ColorUnknown      Color = "245" // Light gray
	ColorWaiting      Color = "1"   // Red - needs permission
	ColorWorking      Color = "2"   // Green
)

// UI semantic colors
const (
	ColorBorder    Color = "238"
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "57"  // Table cursor background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// ColorHelpGroup colors group titles on the help screen
const ColorHelpGroup Color = "141"
