package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// Area returns the render area, falling back to the default terminal size
func (b *BaseStrategy) Area(param model.LayoutParam) (int, int) {
	width, height := param.Width, param.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return width, height
}

// Canvas draws the image into exactly height lines of width cells. Text art
// images are drawn as-is (centered and cropped); anything else is shown as a
// frame carrying the image label.
func (b *BaseStrategy) Canvas(img model.Image, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if isTextArt(img) {
		return b.fit(artLines(img.Data), width, height)
	}
	return b.frame(img, width, height)
}

func isTextArt(img model.Image) bool {
	return len(img.Data) > 0 && strings.HasPrefix(img.MediaType, "text/")
}

func artLines(data []byte) []string {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	return strings.Split(text, "\n")
}

// fit centers a block of lines on a width x height area, cropping what does not fit
func (b *BaseStrategy) fit(lines []string, width, height int) []string {
	sizer := b.GetSizer()

	if len(lines) > height {
		start := (len(lines) - height) / 2
		lines = lines[start : start+height]
	}

	blockWidth := 0
	for _, line := range lines {
		if w := sizer.displayWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	left := 0
	if blockWidth < width {
		left = (width - blockWidth) / 2
	}
	margin := strings.Repeat(" ", left)
	blank := strings.Repeat(" ", width)

	out := make([]string, 0, height)
	top := (height - len(lines)) / 2
	for i := 0; i < top; i++ {
		out = append(out, blank)
	}
	for _, line := range lines {
		line = margin + line
		if sizer.displayWidth(line) > width {
			line = sizer.Truncate(line, width)
		}
		out = append(out, sizer.PadString(line, width, true))
	}
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}

// frame draws a box the size of the area with the image label in the middle
func (b *BaseStrategy) frame(img model.Image, width, height int) []string {
	sizer := b.GetSizer()
	if width < 4 || height < 3 {
		return b.fit([]string{sizer.Truncate(img.Label(), width)}, width, height)
	}

	inner := width - 2
	label := sizer.Truncate("[ "+img.Label()+" ]", inner)
	var details string
	if img.MediaType != "" {
		details = sizer.Truncate(img.MediaType, inner)
	}

	out := make([]string, 0, height)
	out = append(out, "┌"+strings.Repeat("─", inner)+"┐")
	middle := (height - 2) / 2
	for row := 0; row < height-2; row++ {
		content := ""
		switch {
		case row == middle:
			content = label
		case row == middle+1 && details != "":
			content = details
		}
		out = append(out, "│"+b.CenterText(content, inner)+"│")
	}
	out = append(out, "└"+strings.Repeat("─", inner)+"┘")
	return out
}

// CenterText centers text within the given display width
func (b *BaseStrategy) CenterText(text string, width int) string {
	sizer := b.GetSizer()
	text = sizer.Truncate(text, width)
	padding := width - sizer.displayWidth(text)
	leftPad := padding / 2
	rightPad := padding - leftPad
	return strings.Repeat(" ", leftPad) + text + strings.Repeat(" ", rightPad)
}

// Wrap breaks text into lines of at most width cells. At most maxLines lines
// are returned (0 means unlimited); a cut is marked with an ellipsis.
func (b *BaseStrategy) Wrap(text string, width, maxLines int) []string {
	sizer := b.GetSizer()
	if width <= 0 {
		return nil
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		if sizer.displayWidth(word) > width {
			word = sizer.Truncate(word, width)
		}
		switch {
		case current == "":
			current = word
		case sizer.displayWidth(current)+1+sizer.displayWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = runewidth.Truncate(lines[maxLines-1]+"…", width, "…")
	}
	return lines
}

// Overlay replaces canvas rows starting at row with the given lines, centered
// horizontally
func (b *BaseStrategy) Overlay(canvas []string, row int, lines []string, width int) {
	for i, line := range lines {
		target := row + i
		if target < 0 || target >= len(canvas) {
			continue
		}
		canvas[target] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
}
