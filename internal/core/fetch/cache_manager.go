package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-apod-widget/internal/util"
)

const pictureCacheFile = "picture.json"

// CacheManager persists the last successful picture for offline use
type CacheManager struct {
	mu        sync.RWMutex
	cacheFile string
}

// PictureCache represents the cached picture on disk
type PictureCache struct {
	Source    string    `json:"source"`
	UpdatedAt time.Time `json:"updated_at"`
	Picture   Picture   `json:"picture"`
	ImageData []byte    `json:"image_data,omitempty"`
}

// NewCacheManager creates a cache manager storing its file under baseDir
func NewCacheManager(baseDir string) (*CacheManager, error) {
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(homeDir, ".go-apod-widget", "cache")
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &CacheManager{
		cacheFile: filepath.Join(baseDir, pictureCacheFile),
	}, nil
}

// Path returns the cache file location
func (m *CacheManager) Path() string {
	return m.cacheFile
}

// SavePicture writes the picture to disk atomically
func (m *CacheManager) SavePicture(source string, pic Picture) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Saving %s picture %q to %s", source, pic.Title, m.cacheFile))

	cache := PictureCache{
		Source:    source,
		UpdatedAt: time.Now(),
		Picture:   pic,
		ImageData: pic.Image.Data,
	}

	data, err := sonic.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal picture cache: %w", err)
	}

	// Write to temporary file first
	tmpFile := m.cacheFile + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	// Rename to final location (atomic operation)
	if err := os.Rename(tmpFile, m.cacheFile); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename cache file: %w", err)
	}

	return nil
}

// LoadPicture reads the cached picture; ErrNoCachedPicture when absent
func (m *CacheManager) LoadPicture() (*PictureCache, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := os.ReadFile(m.cacheFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrNoCachedPicture, m.cacheFile)
		}
		return nil, fmt.Errorf("failed to read cache file %s: %w", m.cacheFile, err)
	}

	var cache PictureCache
	if err := sonic.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to unmarshal picture cache: %w", err)
	}
	cache.Picture.Image.Data = cache.ImageData

	util.LogDebug(fmt.Sprintf("Loaded cached picture: source=%s, title=%q, updated_at=%s",
		cache.Source, cache.Picture.Title, cache.UpdatedAt.Format("2006-01-02 15:04:05")))
	return &cache, nil
}

// HasCache checks if a cached picture exists
func (m *CacheManager) HasCache() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.cacheFile)
	return err == nil
}

// GetCacheAge returns how old the cached picture is
func (m *CacheManager) GetCacheAge() (time.Duration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, err := os.Stat(m.cacheFile)
	if err != nil {
		return 0, err
	}
	return time.Since(info.ModTime()), nil
}

// ClearCache removes the cached picture
func (m *CacheManager) ClearCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.cacheFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache file: %w", err)
	}
	return nil
}
