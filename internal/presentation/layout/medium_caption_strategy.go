package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// Below this width the side panel is dropped under the image
const minSidePanelWidth = 40

// MediumCaptionStrategy shows the image with rounded corners in a leading
// region and the title on an opaque side panel. The explanation is never shown.
type MediumCaptionStrategy struct {
	BaseStrategy
}

func (s *MediumCaptionStrategy) GetName() string {
	return "Medium Caption"
}

func (s *MediumCaptionStrategy) Render(entry model.Entry, param model.LayoutParam) string {
	width, height := s.Area(param)

	if width < minSidePanelWidth || height < 4 {
		lines := s.Canvas(entry.Image, width, height-1)
		title := sidePanelStyle.Padding(0, 1).Width(width).MaxWidth(width).
			Render(s.GetSizer().Truncate(entry.Title, width-2))
		return strings.Join(append(lines, title), "\n")
	}

	imageWidth := width * 3 / 5
	panelWidth := width - imageWidth

	// The rounded border takes one cell on every side
	canvas := s.Canvas(entry.Image, imageWidth-2, height-2)
	image := imageFrameStyle.Render(strings.Join(canvas, "\n"))

	// Two cells of padding on each axis
	titleLines := s.Wrap(entry.Title, panelWidth-2, height-2)
	panel := sidePanelStyle.
		Width(panelWidth).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(titleLines, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, image, panel)
}
