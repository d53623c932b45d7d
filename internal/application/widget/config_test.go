package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-apod-widget/internal/core/constants"
	"github.com/penwyp/go-apod-widget/internal/core/model"
)

func TestWidgetConfig_ValidateDefaults(t *testing.T) {
	cfg := &WidgetConfig{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "apod", cfg.Source)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "24h", cfg.TimeFormat)
	assert.Equal(t, float64(1), cfg.UIRefreshRate)
	assert.Equal(t, constants.FetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, constants.ImageCacheTTL, cfg.ImageCacheTTL)
	assert.Equal(t, constants.ImageCacheMaxEntries, cfg.ImageCacheEntries)
	assert.Nil(t, cfg.ForcedSize())
	assert.Equal(t, time.Second, cfg.UITickInterval())
}

func TestWidgetConfig_ValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  WidgetConfig
	}{
		{"unknown_source", WidgetConfig{Source: "flickr"}},
		{"unknown_size", WidgetConfig{Size: "huge"}},
		{"unknown_time_format", WidgetConfig{TimeFormat: "36h"}},
		{"negative_refresh_rate", WidgetConfig{UIRefreshRate: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestWidgetConfig_ForcedSize(t *testing.T) {
	cfg := &WidgetConfig{Size: "medium"}
	require.NoError(t, cfg.Validate())

	forced := cfg.ForcedSize()
	require.NotNil(t, forced)
	assert.Equal(t, model.SizeMedium, *forced)
}

func TestWidgetConfig_SourceConfig(t *testing.T) {
	cfg := &WidgetConfig{
		Source:      "rss",
		BaseURL:     "http://example.test/rss",
		APIKey:      "key",
		OfflineMode: true,
		CacheDir:    "/tmp/apod",
	}
	cfg.UIRefreshRate = 4
	require.NoError(t, cfg.Validate())

	sc := cfg.SourceConfig()
	assert.Equal(t, "rss", sc.Source)
	assert.Equal(t, "http://example.test/rss", sc.BaseURL)
	assert.Equal(t, "key", sc.APIKey)
	assert.True(t, sc.OfflineMode)
	assert.Equal(t, "/tmp/apod", sc.CacheDir)
	assert.Equal(t, constants.FetchTimeout, sc.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.UITickInterval())
}
