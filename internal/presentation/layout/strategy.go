package layout

import (
	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// LayoutStrategy renders an entry according to one layout variant
type LayoutStrategy interface {
	Render(entry model.Entry, param model.LayoutParam) string
	GetName() string
}

var strategies = map[model.LayoutVariant]LayoutStrategy{
	model.LayoutPlainImage:    &PlainImageStrategy{},
	model.LayoutSmallCaption:  &SmallCaptionStrategy{},
	model.LayoutMediumCaption: &MediumCaptionStrategy{},
	model.LayoutLargeCaption:  &LargeCaptionStrategy{},
}

// GetLayoutStrategy returns the strategy for a variant
func GetLayoutStrategy(variant model.LayoutVariant) LayoutStrategy {
	if strategy, exists := strategies[variant]; exists {
		return strategy
	}

	// Unknown variants show the bare image
	return &PlainImageStrategy{}
}

// RenderEntry selects the variant for entry at size and renders it
func RenderEntry(entry model.Entry, size model.SizeClass, param model.LayoutParam) (model.LayoutVariant, string) {
	variant := SelectForEntry(entry, size)
	return variant, GetLayoutStrategy(variant).Render(entry, param)
}
