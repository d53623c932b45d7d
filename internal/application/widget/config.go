package widget

import (
	"fmt"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/core/fetch"
	"github.com/penwyp/go-apod-widget/internal/core/model"
)

// WidgetConfig contains configuration for the live widget
type WidgetConfig struct {
	// Picture source
	Source      string // apod, rss, static
	BaseURL     string
	APIKey      string
	OfflineMode bool
	CacheDir    string

	// Host configuration file holding shouldShowText
	IntentFile string

	// Display settings
	Size       string // small, medium, large, unknown; empty measures the terminal
	Timezone   string
	TimeFormat string

	// Refresh settings
	UIRefreshRate float64 // redraws per second
	FetchTimeout  time.Duration

	// In-memory image cache
	ImageCacheTTL     time.Duration
	ImageCacheEntries int
}

// Validate fills defaults and rejects values the widget cannot use
func (c *WidgetConfig) Validate() error {
	if c.Source == "" {
		c.Source = "apod"
	}
	switch c.Source {
	case "apod", "rss", "static":
	default:
		return fmt.Errorf("unknown source %q (use apod, rss or static)", c.Source)
	}
	if c.Size != "" {
		if _, ok := model.ParseSizeClass(c.Size); !ok {
			return fmt.Errorf("unknown size %q (use small, medium, large or unknown)", c.Size)
		}
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.TimeFormat == "" {
		c.TimeFormat = "24h"
	}
	if c.TimeFormat != "12h" && c.TimeFormat != "24h" {
		return fmt.Errorf("unknown time format %q (use 12h or 24h)", c.TimeFormat)
	}
	if c.UIRefreshRate < 0 {
		return fmt.Errorf("refresh rate must be positive, got %v", c.UIRefreshRate)
	}
	if c.UIRefreshRate == 0 {
		c.UIRefreshRate = 1
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = constants.FetchTimeout
	}
	if c.ImageCacheTTL == 0 {
		c.ImageCacheTTL = constants.ImageCacheTTL
	}
	if c.ImageCacheEntries == 0 {
		c.ImageCacheEntries = constants.ImageCacheMaxEntries
	}
	return nil
}

// ForcedSize returns the configured size class, if any
func (c *WidgetConfig) ForcedSize() *model.SizeClass {
	if c.Size == "" {
		return nil
	}
	size, _ := model.ParseSizeClass(c.Size)
	return &size
}

// SourceConfig returns the fetch layer configuration
func (c *WidgetConfig) SourceConfig() *fetch.SourceConfig {
	return &fetch.SourceConfig{
		Source:      c.Source,
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		OfflineMode: c.OfflineMode,
		CacheDir:    c.CacheDir,
		Timeout:     c.FetchTimeout,
	}
}

// UITickInterval converts the refresh rate into a ticker interval
func (c *WidgetConfig) UITickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.UIRefreshRate)
}
