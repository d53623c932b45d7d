package fetch

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed assets/static.txt
var staticArt []byte

// StaticSource always returns the same bundled picture. It is used for
// demos and when no network is wanted.
type StaticSource struct{}

// NewStaticSource creates a new static source
func NewStaticSource() Source {
	return &StaticSource{}
}

// FetchPicture returns the bundled picture unless ctx is already done
func (s *StaticSource) FetchPicture(ctx context.Context) (Picture, error) {
	if err := ctx.Err(); err != nil {
		return Picture{}, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return StaticPicture(), nil
}

// GetSourceName returns the name of this source
func (s *StaticSource) GetSourceName() string {
	return "static"
}

// StaticPicture returns the bundled picture
func StaticPicture() Picture {
	pic := Picture{
		Date:        "1995-06-16",
		Title:       "Pillars of Creation",
		Explanation: "Columns of cool interstellar hydrogen gas and dust in the Eagle Nebula, incubators for new stars.",
		MediaType:   "image",
		URL:         "bundled://pillars.txt",
	}
	pic.Image.Name = "pillars.txt"
	pic.Image.URL = pic.URL
	pic.Image.MediaType = "text/plain"
	pic.Image.Data = staticArt
	return pic
}
