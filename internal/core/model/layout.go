package model

// LayoutVariant identifies which composition the host applies to an entry.
// It carries no data itself.
type LayoutVariant int

const (
	LayoutPlainImage LayoutVariant = iota
	LayoutSmallCaption
	LayoutMediumCaption
	LayoutLargeCaption
)

func (v LayoutVariant) String() string {
	switch v {
	case LayoutPlainImage:
		return "plain_image"
	case LayoutSmallCaption:
		return "small_caption"
	case LayoutMediumCaption:
		return "medium_caption"
	case LayoutLargeCaption:
		return "large_caption"
	default:
		return "unknown"
	}
}
