package constants

import "time"

const (
	// Reload cadence after a fetch
	SuccessReloadInterval = 5 * time.Minute
	FailureReloadInterval = 15 * time.Minute

	// Remote source limits
	FetchTimeout  = 30 * time.Second
	MaxImageBytes = int64(8 << 20)

	// Image cache
	ImageCacheTTL        = 24 * time.Hour
	ImageCacheMaxEntries = 16
)

const (
	// ConnectionErrorTitle is the caption shown when a fetch fails
	ConnectionErrorTitle = "Connection Error"

	SampleTitle       = "Sample Text"
	SampleExplanation = "Explanation Sample Text"
)
