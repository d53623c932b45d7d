package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// A terminal narrower or shorter than this is Small
	SmallMaxWidth  = 60
	SmallMaxHeight = 16
	// A terminal shorter than this (and not Small) is Medium
	MediumMaxHeight = 30
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

type Sizer struct {
}

// displayWidth calculates the display width of a string containing wide characters
func (i Sizer) displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Truncate cuts s to width display cells, marking the cut with an ellipsis
func (i Sizer) Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if i.displayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Classify maps a render area to a size class
func (i Sizer) Classify(width, height int) model.SizeClass {
	switch {
	case width <= 0 || height <= 0:
		return model.SizeUnknown
	case width < SmallMaxWidth || height < SmallMaxHeight:
		return model.SizeSmall
	case height < MediumMaxHeight:
		return model.SizeMedium
	default:
		return model.SizeLarge
	}
}

// TerminalSize returns the size of stdout, or the defaults when it is not a terminal
func (i Sizer) TerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		util.LogDebugf("Terminal size unavailable (%v), using %dx%d", err, DefaultWidth, DefaultHeight)
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Classify maps a render area to a size class using the shared sizer
func Classify(width, height int) model.SizeClass {
	return sharedSizer.Classify(width, height)
}

// GetSizer returns the shared sizer
func GetSizer() *Sizer {
	return sharedSizer
}
