package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/penwyp/go-apod-widget/internal/core/cache"
	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// ImageLoader downloads images, reusing recent downloads from memory
type ImageLoader struct {
	httpClient *http.Client
	cache      *cache.MemoryCache
	maxBytes   int64
}

// NewImageLoader creates a loader. A nil cache disables caching.
func NewImageLoader(httpClient *http.Client, memCache *cache.MemoryCache) *ImageLoader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.FetchTimeout}
	}
	return &ImageLoader{
		httpClient: httpClient,
		cache:      memCache,
		maxBytes:   constants.MaxImageBytes,
	}
}

// Load returns the image at rawURL
func (l *ImageLoader) Load(ctx context.Context, rawURL string) (model.Image, error) {
	if l.cache != nil {
		if img, ok := l.cache.Get(rawURL); ok {
			util.LogDebugf("Using cached image %s", rawURL)
			return img, nil
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return model.Image{}, fmt.Errorf("%w: invalid image url %q", ErrMalformedPayload, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return model.Image{}, fmt.Errorf("%w: failed to download image: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Image{}, fmt.Errorf("%w: image status code %d", ErrSourceUnavailable, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, l.maxBytes+1))
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to read image body: %w", err)
	}
	if int64(len(data)) > l.maxBytes {
		return model.Image{}, fmt.Errorf("%w: more than %d bytes", ErrImageTooLarge, l.maxBytes)
	}

	img := model.Image{
		Name:      path.Base(u.Path),
		URL:       rawURL,
		MediaType: resp.Header.Get("Content-Type"),
		Data:      data,
	}
	util.LogDebugf("Downloaded image %s (%d bytes, %s)", rawURL, len(data), img.MediaType)

	if l.cache != nil {
		l.cache.Set(rawURL, img)
	}
	return img, nil
}
