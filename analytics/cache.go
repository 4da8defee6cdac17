package analytics

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/cespare/xxhash"
)

// Cache 建议性的报告缓存，键为 (过滤条件, 窗口, 分区集合)。
// 只是省一次重算：关闭或禁用缓存时所有结果必须完全一致。
type Cache struct {
	mu      sync.RWMutex
	enabled bool
	ttl     time.Duration
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	report   *model.Report
	storedAt time.Time
}

// NewCache 创建缓存。enabled 为 false 时所有操作都是无操作。
func NewCache(enabled bool, ttl time.Duration) *Cache {
	return &Cache{
		enabled: enabled,
		ttl:     ttl,
		entries: make(map[uint64]cacheEntry),
	}
}

func cacheKey(username string, days int, sections []string) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%s|%d|%s", username, days, strings.Join(sections, ",")))
}

// Get 查询缓存。nil 缓存、禁用或过期都视为未命中。
func (c *Cache) Get(username string, days int, sections []string) (*model.Report, bool) {
	if c == nil || !c.enabled {
		return nil, false
	}
	key := cacheKey(username, days, sections)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(entry.storedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return entry.report, true
}

// Set 写入缓存
func (c *Cache) Set(username string, days int, sections []string, report *model.Report) {
	if c == nil || !c.enabled {
		return
	}
	c.mu.Lock()
	c.entries[cacheKey(username, days, sections)] = cacheEntry{report: report, storedAt: time.Now()}
	c.mu.Unlock()
}

// Invalidate 清空全部缓存。数据文件被采集端刷新时调用。
func (c *Cache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries = make(map[uint64]cacheEntry)
	c.mu.Unlock()
}
