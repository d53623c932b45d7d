package layout

import "github.com/charmbracelet/lipgloss"

// Single line bar at the bottom of small layouts
var captionBarStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#3A3A3A")).
	Padding(0, 1)

var imageFrameStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#5F87AF"))

var sidePanelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#1C1C1C")).
	Padding(1, 1)

var overlayTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFFFFF")).
	Background(lipgloss.Color("#303030")).
	Padding(0, 1)

// Lighter than the title so the image shows through
var overlayTextStyle = lipgloss.NewStyle().
	Faint(true).
	Foreground(lipgloss.Color("#D0D0D0")).
	Background(lipgloss.Color("#262626")).
	Padding(0, 1)
