package layout

import (
	"strings"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// SmallCaptionStrategy fills the area with the image and puts the title on a
// single bold bar along the bottom edge
type SmallCaptionStrategy struct {
	BaseStrategy
}

func (s *SmallCaptionStrategy) GetName() string {
	return "Small Caption"
}

func (s *SmallCaptionStrategy) Render(entry model.Entry, param model.LayoutParam) string {
	width, height := s.Area(param)

	title := s.GetSizer().Truncate(entry.Title, width-2)
	bar := captionBarStyle.Width(width).MaxWidth(width).Render(title)
	if height < 2 {
		return bar
	}

	lines := s.Canvas(entry.Image, width, height-1)
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}
