package fetch

import (
	"fmt"
	"time"

	"github.com/penwyp/go-apod-widget/internal/util"
)

// SourceConfig selects and configures the picture source
type SourceConfig struct {
	Source      string        `json:"source"` // apod, rss, static
	BaseURL     string        `json:"baseUrl"`
	APIKey      string        `json:"-"`
	OfflineMode bool          `json:"offlineMode"`
	CacheDir    string        `json:"cacheDir"`
	Timeout     time.Duration `json:"timeout"`
}

// CreateSource creates a picture source based on configuration
func CreateSource(cfg *SourceConfig, images *ImageLoader) (Source, error) {
	var baseSource Source

	switch cfg.Source {
	case "apod", "":
		baseSource = NewAPODSource(cfg.BaseURL, cfg.APIKey, images)
	case "rss":
		baseSource = NewRSSSource(cfg.BaseURL, images)
	case "static":
		baseSource = NewStaticSource()
	default:
		return nil, fmt.Errorf("unknown picture source: %s", cfg.Source)
	}

	// Remote sources and offline mode are backed by the disk cache
	if cfg.OfflineMode || baseSource.GetSourceName() != "static" {
		cacheManager, err := NewCacheManager(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache manager: %w", err)
		}
		util.LogDebug(fmt.Sprintf("Enabling picture cache: offline_mode=%t, source=%s, cache_file=%s",
			cfg.OfflineMode, baseSource.GetSourceName(), cacheManager.Path()))
		return NewCachedSource(baseSource, cacheManager, cfg.OfflineMode), nil
	}

	util.LogDebug("Successfully created static picture source")
	return baseSource, nil
}
