package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/util"
)

// MemoryCacheEntry is a downloaded image with access time tracking
type MemoryCacheEntry struct {
	Image        model.Image
	StoredAt     time.Time
	LastAccessed time.Time
}

// Stats summarises cache usage
type Stats struct {
	Entries   int
	Bytes     int
	Hits      int64
	Misses    int64
	Evictions int64
}

// MemoryCache keeps recently downloaded images keyed by URL so the same
// picture is not downloaded on every refresh
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]*MemoryCacheEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	hits      int64
	misses    int64
	evictions int64
}

// NewMemoryCache creates a cache. A ttl of zero disables expiry and a
// maxEntries of zero disables eviction.
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]*MemoryCacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (mc *MemoryCache) Set(key string, image model.Image) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := mc.now()
	if _, exists := mc.entries[key]; !exists && mc.maxEntries > 0 && len(mc.entries) >= mc.maxEntries {
		mc.evictOldestLocked()
	}
	mc.entries[key] = &MemoryCacheEntry{
		Image:        image,
		StoredAt:     now,
		LastAccessed: now,
	}
}

func (mc *MemoryCache) Get(key string) (model.Image, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	entry, ok := mc.entries[key]
	if !ok {
		mc.misses++
		return model.Image{}, false
	}

	now := mc.now()
	if mc.ttl > 0 && now.Sub(entry.StoredAt) > mc.ttl {
		delete(mc.entries, key)
		mc.misses++
		util.LogDebugf("MemoryCache: expired entry %s", key)
		return model.Image{}, false
	}

	entry.LastAccessed = now
	mc.hits++
	return entry.Image, true
}

// Delete removes a single entry
func (mc *MemoryCache) Delete(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.entries, key)
}

// Clear drops every entry and resets the counters
func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entries = make(map[string]*MemoryCacheEntry)
	mc.hits, mc.misses, mc.evictions = 0, 0, 0
	util.LogInfo("MemoryCache: cleared")
}

func (mc *MemoryCache) Stats() Stats {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	stats := Stats{
		Entries:   len(mc.entries),
		Hits:      mc.hits,
		Misses:    mc.misses,
		Evictions: mc.evictions,
	}
	for _, entry := range mc.entries {
		stats.Bytes += len(entry.Image.Data)
	}
	return stats
}

// evictOldestLocked removes the least recently accessed entry; mc.mu must be held
func (mc *MemoryCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, entry := range mc.entries {
		if oldestKey == "" || entry.LastAccessed.Before(oldest) {
			oldestKey = key
			oldest = entry.LastAccessed
		}
	}
	if oldestKey == "" {
		return
	}
	delete(mc.entries, oldestKey)
	mc.evictions++
	util.LogDebug(fmt.Sprintf("MemoryCache: evicted %s (last accessed %s)", oldestKey, oldest.Format("15:04:05")))
}
