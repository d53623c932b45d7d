package widget

import (
	"fmt"

	"github.com/penwyp/go-apod-widget/internal/core/cache"
	"github.com/penwyp/go-apod-widget/internal/core/fetch"
	"github.com/penwyp/go-apod-widget/internal/core/timeline"
)

// NewTimelineProvider builds the picture source stack described by config
// and wraps it in a timeline provider. It also returns the source name.
func NewTimelineProvider(config *WidgetConfig) (*timeline.Provider, string, error) {
	if err := config.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}

	images := fetch.NewImageLoader(nil, cache.NewMemoryCache(config.ImageCacheTTL, config.ImageCacheEntries))
	sourceConfig := config.SourceConfig()
	source, err := fetch.CreateSource(sourceConfig, images)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create picture source: %w", err)
	}

	return timeline.NewProvider(fetch.NewAdapter(source, sourceConfig.Timeout)), source.GetSourceName(), nil
}
