package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/presentation/interaction"
	"github.com/penwyp/go-apod-widget/internal/presentation/layout"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// DisplayConfig configures the terminal display
type DisplayConfig struct {
	Timezone   string
	TimeFormat string    // "12h" or "24h"
	Output     io.Writer // defaults to stdout
}

// Frame is everything needed to draw one screen
type Frame struct {
	Entry      model.Entry
	Size       model.SizeClass
	Width      int
	Height     int
	Loading    bool
	NextReload time.Time // zero when no reload is scheduled
	SourceName string
	State      model.InteractionState
}

var statusStyle = lipgloss.NewStyle().
	Faint(true)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#5F87AF")).
	Padding(1, 2)

type TerminalDisplay struct {
	config            *DisplayConfig
	out               io.Writer
	inAlternateScreen bool
	isFirstRender     bool
	lastVariant       model.LayoutVariant
	lastDraw          time.Time
}

func NewTerminalDisplay(config *DisplayConfig) *TerminalDisplay {
	if config == nil {
		config = &DisplayConfig{}
	}
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDisplay{
		config:        config,
		out:           out,
		isFirstRender: true,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.EnterAltScreen)
	fmt.Fprint(td.out, util.ClearScreen)
	fmt.Fprint(td.out, util.ClearScrollback)
	fmt.Fprint(td.out, util.ResetScrollRegion)
	fmt.Fprint(td.out, util.HideCursor)
	fmt.Fprint(td.out, util.MoveCursorHome)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	fmt.Fprint(td.out, util.ClearScreen)
	fmt.Fprint(td.out, util.MoveCursorHome)
	fmt.Fprint(td.out, util.ShowCursor)
	fmt.Fprint(td.out, util.ExitAltScreen)
	td.inAlternateScreen = false
}

// Render draws a frame. The screen is only cleared when the layout changes;
// otherwise the frame is drawn over the previous one.
func (td *TerminalDisplay) Render(frame Frame) {
	variant := layout.SelectForEntry(frame.Entry, frame.Size)
	if td.isFirstRender || variant != td.lastVariant {
		fmt.Fprint(td.out, util.ClearScreen)
		td.isFirstRender = false
		td.lastVariant = variant
	}

	fmt.Fprint(td.out, util.MoveCursorHome)
	fmt.Fprint(td.out, td.Compose(frame, time.Now()))
	fmt.Fprint(td.out, util.ClearToEnd)

	td.lastDraw = time.Now()
}

// Compose builds the screen content for a frame as of now
func (td *TerminalDisplay) Compose(frame Frame, now time.Time) string {
	width, height := frame.Width, frame.Height
	if width <= 0 {
		width = layout.DefaultWidth
	}
	if height <= 0 {
		height = layout.DefaultHeight
	}

	// Last row is the status line
	bodyHeight := height - 1
	param := model.LayoutParam{
		Width:      width,
		Height:     bodyHeight,
		Timezone:   td.config.Timezone,
		TimeFormat: td.config.TimeFormat,
	}

	var body string
	if frame.State.ShowHelp {
		body = td.renderHelp(width, bodyHeight)
	} else {
		_, body = layout.RenderEntry(frame.Entry, frame.Size, param)
	}

	status := td.statusLine(frame, width, now)
	return body + "\n" + status
}

func (td *TerminalDisplay) renderHelp(width, height int) string {
	lines := []string{"APOD Widget - Help", ""}
	lines = append(lines, interaction.HelpLines()...)
	lines = append(lines, "", "Press 'h' to return...")
	box := helpBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (td *TerminalDisplay) statusLine(frame Frame, width int, now time.Time) string {
	parts := []string{td.clock(now)}
	if frame.SourceName != "" {
		parts = append(parts, frame.SourceName)
	}
	parts = append(parts, layout.SelectForEntry(frame.Entry, frame.Size).String()+" ("+frame.Size.String()+")")

	switch {
	case frame.Loading:
		parts = append(parts, "loading…")
	case frame.State.IsPaused:
		parts = append(parts, "paused")
	case !frame.NextReload.IsZero():
		remaining := frame.NextReload.Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		parts = append(parts, "next refresh in "+util.FormatDuration(remaining))
	default:
		parts = append(parts, "no refresh scheduled")
	}

	if frame.State.StatusMessage != "" {
		parts = append(parts, frame.State.StatusMessage)
	}
	parts = append(parts, "h: help")

	line := layout.GetSizer().Truncate(strings.Join(parts, " │ "), width)
	return statusStyle.Render(line)
}

func (td *TerminalDisplay) clock(now time.Time) string {
	format := "15:04:05"
	if td.config.TimeFormat == "12h" {
		format = "3:04:05 PM"
	}
	return util.GetTimeProvider().Format(now, format)
}

// LastDraw returns when the display was last drawn
func (td *TerminalDisplay) LastDraw() time.Time {
	return td.lastDraw
}
