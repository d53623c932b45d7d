package timeline

import (
	_ "embed"

	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/core/model"
)

//go:embed assets/placeholder.txt
var placeholderArt []byte

//go:embed assets/error.txt
var errorArt []byte

// DefaultContent holds the fixed assets the provider uses when it has no
// fetched content to show
type DefaultContent struct {
	Placeholder       model.Image
	Error             model.Image
	SampleTitle       string
	SampleExplanation string
}

// BundledContent returns the assets embedded in the binary
func BundledContent() DefaultContent {
	return DefaultContent{
		Placeholder: model.Image{
			Name:      "Placeholder",
			MediaType: "text/plain",
			Data:      placeholderArt,
		},
		Error: model.Image{
			Name:      "Error",
			MediaType: "text/plain",
			Data:      errorArt,
		},
		SampleTitle:       constants.SampleTitle,
		SampleExplanation: constants.SampleExplanation,
	}
}
