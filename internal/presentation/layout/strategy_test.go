package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

const (
	testTitle       = "M31: The Andromeda Galaxy"
	testExplanation = "The nearest large spiral galaxy."
)

func testEntry(img model.Image) model.Entry {
	return model.Entry{
		Image:       img,
		Title:       testTitle,
		Explanation: testExplanation,
		ShowCaption: true,
	}
}

var artImage = model.Image{
	Name:      "art.txt",
	MediaType: "text/plain",
	Data:      []byte("  *  \n *** \n*****\n"),
}

var photoImage = model.Image{
	Name:      "m31.jpg",
	MediaType: "image/jpeg",
	Data:      []byte{0xff, 0xd8, 0xff},
}

func TestGetLayoutStrategy(t *testing.T) {
	tests := []struct {
		variant  model.LayoutVariant
		wantName string
	}{
		{model.LayoutPlainImage, "Plain Image"},
		{model.LayoutSmallCaption, "Small Caption"},
		{model.LayoutMediumCaption, "Medium Caption"},
		{model.LayoutLargeCaption, "Large Caption"},
		{model.LayoutVariant(99), "Plain Image"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			strategy := GetLayoutStrategy(tt.variant)
			require.NotNil(t, strategy)
			assert.Equal(t, tt.wantName, strategy.GetName())
		})
	}
}

func TestCompositionContracts(t *testing.T) {
	param := model.LayoutParam{Width: 80, Height: 40}

	tests := []struct {
		variant         model.LayoutVariant
		wantTitle       bool
		wantExplanation bool
	}{
		{model.LayoutPlainImage, false, false},
		{model.LayoutSmallCaption, true, false},
		{model.LayoutMediumCaption, true, false},
		{model.LayoutLargeCaption, true, true},
	}

	for _, tt := range tests {
		for _, img := range []model.Image{artImage, photoImage} {
			t.Run(tt.variant.String()+"/"+img.Name, func(t *testing.T) {
				out := GetLayoutStrategy(tt.variant).Render(testEntry(img), param)
				require.NotEmpty(t, out)

				if tt.wantTitle {
					assert.Contains(t, out, testTitle)
				} else {
					assert.NotContains(t, out, testTitle)
				}
				if tt.wantExplanation {
					assert.Contains(t, out, testExplanation)
				} else {
					assert.NotContains(t, out, testExplanation)
				}
			})
		}
	}
}

func TestRenderFillsArea(t *testing.T) {
	param := model.LayoutParam{Width: 70, Height: 20}

	for _, variant := range []model.LayoutVariant{
		model.LayoutPlainImage,
		model.LayoutSmallCaption,
		model.LayoutMediumCaption,
		model.LayoutLargeCaption,
	} {
		t.Run(variant.String(), func(t *testing.T) {
			out := GetLayoutStrategy(variant).Render(testEntry(photoImage), param)
			assert.Equal(t, param.Height, lipgloss.Height(out))
			assert.Equal(t, param.Width, lipgloss.Width(out))
		})
	}
}

func TestSmallCaptionBarAtBottom(t *testing.T) {
	out := (&SmallCaptionStrategy{}).Render(testEntry(artImage), model.LayoutParam{Width: 40, Height: 10})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[len(lines)-1], testTitle)
	assert.Contains(t, out, "*****")
}

func TestLargeCaptionTitleAboveExplanation(t *testing.T) {
	out := (&LargeCaptionStrategy{}).Render(testEntry(artImage), model.LayoutParam{Width: 80, Height: 40})
	titleAt := strings.Index(out, testTitle)
	explanationAt := strings.Index(out, testExplanation)
	require.GreaterOrEqual(t, titleAt, 0)
	require.GreaterOrEqual(t, explanationAt, 0)
	assert.Less(t, titleAt, explanationAt)
}

func TestRenderEntry(t *testing.T) {
	entry := testEntry(artImage)

	variant, out := RenderEntry(entry, model.SizeMedium, model.LayoutParam{Width: 80, Height: 24})
	assert.Equal(t, model.LayoutMediumCaption, variant)
	assert.Contains(t, out, testTitle)

	entry.ShowCaption = false
	variant, out = RenderEntry(entry, model.SizeLarge, model.LayoutParam{Width: 80, Height: 40})
	assert.Equal(t, model.LayoutPlainImage, variant)
	assert.NotContains(t, out, testTitle)
}
