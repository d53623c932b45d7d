package layout

import (
	"strings"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// LargeCaptionStrategy fills the area with the image, overlays the bold title
// near the top and the lighter explanation further down
type LargeCaptionStrategy struct {
	BaseStrategy
}

func (s *LargeCaptionStrategy) GetName() string {
	return "Large Caption"
}

func (s *LargeCaptionStrategy) Render(entry model.Entry, param model.LayoutParam) string {
	width, height := s.Area(param)
	canvas := s.Canvas(entry.Image, width, height)

	// Panels keep a margin of one cell plus their own padding
	textWidth := width - 4
	if textWidth < 1 {
		return strings.Join(canvas, "\n")
	}

	if entry.Title != "" {
		title := overlayTitleStyle.Render(s.GetSizer().Truncate(entry.Title, textWidth))
		s.Overlay(canvas, 1, []string{title}, width)
	}

	if entry.Explanation != "" {
		maxLines := height / 3
		if maxLines < 1 {
			maxLines = 1
		}
		wrapped := s.Wrap(entry.Explanation, textWidth, maxLines)
		panel := make([]string, 0, len(wrapped))
		for _, line := range wrapped {
			panel = append(panel, overlayTextStyle.Width(textWidth+2).Render(line))
		}
		start := height - len(panel) - 1
		if start < 3 {
			start = 3
		}
		s.Overlay(canvas, start, panel, width)
	}

	return strings.Join(canvas, "\n")
}
