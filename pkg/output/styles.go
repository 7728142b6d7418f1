package output

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSuccess   = lipgloss.Color("#10B981") // Green
	colorWarning   = lipgloss.Color("#F59E0B") // Amber
	colorError     = lipgloss.Color("#EF4444") // Red
	colorInfo      = lipgloss.Color("#3B82F6") // Blue
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorHighlight = lipgloss.Color("#06B6D4") // Cyan
)

var (
	// keyStyle renders config keys and resource identifiers.
	keyStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	// valueStyle renders secondary information in a muted tone.
	valueStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)
)

// Panel styles
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	errorPanelStyle = panelStyle.BorderForeground(colorError)

	infoPanelStyle = panelStyle.BorderForeground(colorInfo)
)

// diffStyles are created per renderer so highlighting can be forced on
// regardless of the detected terminal profile.
type diffStyles struct {
	added   lipgloss.Style
	removed lipgloss.Style
}

func newDiffStyles(r *lipgloss.Renderer) diffStyles {
	return diffStyles{
		added:   r.NewStyle().Foreground(colorSuccess),
		removed: r.NewStyle().Foreground(colorError),
	}
}
