package fetch

import (
	"context"
	"fmt"

	"github.com/penwyp/go-apod-widget/internal/util"
)

// CachedSource wraps another source and records every successful picture on
// disk. In offline mode the disk copy is served first.
type CachedSource struct {
	source       Source
	cacheManager *CacheManager
	useOffline   bool
}

// NewCachedSource creates a new cached source
func NewCachedSource(source Source, cacheManager *CacheManager, useOffline bool) *CachedSource {
	return &CachedSource{
		source:       source,
		cacheManager: cacheManager,
		useOffline:   useOffline,
	}
}

// FetchPicture returns the picture from cache (offline mode) or the wrapped source.
// Online failures are not masked by the cache so they stay visible to the widget.
func (s *CachedSource) FetchPicture(ctx context.Context) (Picture, error) {
	if s.useOffline {
		cache, err := s.cacheManager.LoadPicture()
		if err == nil {
			util.LogDebugf("Using cached picture %q from %s", cache.Picture.Title, cache.Source)
			return cache.Picture, nil
		}
		util.LogDebugf("Cached picture not available (%v), falling back to %s", err, s.source.GetSourceName())
	}

	pic, err := s.source.FetchPicture(ctx)
	if err != nil {
		return Picture{}, err
	}

	if err := s.cacheManager.SavePicture(s.source.GetSourceName(), pic); err != nil {
		util.LogWarnf("Failed to update picture cache: %v", err)
	}
	return pic, nil
}

// GetSourceName returns the name of this source
func (s *CachedSource) GetSourceName() string {
	if s.useOffline {
		return fmt.Sprintf("%s-offline", s.source.GetSourceName())
	}
	return fmt.Sprintf("%s-cached", s.source.GetSourceName())
}
