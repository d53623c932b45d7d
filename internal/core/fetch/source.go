package fetch

import (
	"context"
	"errors"

	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// Source retrieves the current picture of the day from one backend
type Source interface {
	// FetchPicture returns the current picture with its image loaded
	FetchPicture(ctx context.Context) (Picture, error)

	// GetSourceName returns the name of this source
	GetSourceName() string
}

// Picture is one picture of the day as reported by a source
type Picture struct {
	Date         string      `json:"date"`
	Title        string      `json:"title"`
	Explanation  string      `json:"explanation"`
	MediaType    string      `json:"media_type"`
	URL          string      `json:"url"`
	HDURL        string      `json:"hdurl,omitempty"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	Copyright    string      `json:"copyright,omitempty"`
	Image        model.Image `json:"image"`
}

// ErrSourceUnavailable is returned when the backend cannot be reached or answers with an error
var ErrSourceUnavailable = errors.New("picture source unavailable")

// ErrMalformedPayload is returned when the backend answer cannot be understood
var ErrMalformedPayload = errors.New("malformed picture payload")

// ErrUnsupportedMedia is returned when today's entry has no displayable image
var ErrUnsupportedMedia = errors.New("unsupported media type")

// ErrImageTooLarge is returned when an image exceeds the download limit
var ErrImageTooLarge = errors.New("image exceeds size limit")

// ErrNoCachedPicture is returned when offline mode finds nothing on disk
var ErrNoCachedPicture = errors.New("no cached picture available")
