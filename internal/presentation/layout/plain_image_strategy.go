package layout

import (
	"strings"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// PlainImageStrategy fills the area with the image and shows no text
type PlainImageStrategy struct {
	BaseStrategy
}

func (s *PlainImageStrategy) GetName() string {
	return "Plain Image"
}

func (s *PlainImageStrategy) Render(entry model.Entry, param model.LayoutParam) string {
	width, height := s.Area(param)
	return strings.Join(s.Canvas(entry.Image, width, height), "\n")
}
