package layout

import "github.com/penwyp/go-apod-widget/internal/core/model"

// Select maps a size class and the caption flag to a layout variant.
// The first matching rule wins:
//
//	showCaption == false -> PlainImage
//	Small                -> SmallCaption
//	Medium               -> MediumCaption
//	Large                -> LargeCaption
//	anything else        -> PlainImage
func Select(size model.SizeClass, showCaption bool) model.LayoutVariant {
	if !showCaption {
		return model.LayoutPlainImage
	}

	switch size {
	case model.SizeSmall:
		return model.LayoutSmallCaption
	case model.SizeMedium:
		return model.LayoutMediumCaption
	case model.SizeLarge:
		return model.LayoutLargeCaption
	default:
		return model.LayoutPlainImage
	}
}

// SelectForEntry selects the variant for an entry rendered at the given size
func SelectForEntry(entry model.Entry, size model.SizeClass) model.LayoutVariant {
	return Select(size, entry.ShowCaption)
}
