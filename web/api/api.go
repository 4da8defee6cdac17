package api

import (
	"strings"
	"sync"
	"time"

	"github.com/afumu/gramtrace/analytics"
	"github.com/afumu/gramtrace/store"
	"github.com/afumu/gramtrace/web/export"
	"github.com/fsnotify/fsnotify"
)

// API 封装了 API 处理器所需的所有依赖。
type API struct {
	Store    store.Store
	Engine   *analytics.Engine
	Export   *export.Service
	Cache    *analytics.Cache
	Conf     *Config
	Password *PasswordManager
	mu       sync.Mutex
}

type Config struct {
	DataDir         string
	CacheEnabled    bool
	CacheTTLMinutes int
}

// NewAPI 创建一个新的 API 处理器。
func NewAPI(s store.Store, conf *Config) *API {
	ttl := time.Duration(conf.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	cache := analytics.NewCache(conf.CacheEnabled, ttl)
	engine := analytics.NewEngine(s, cache)

	a := &API{
		Store:    s,
		Engine:   engine,
		Export:   &export.Service{Engine: engine},
		Cache:    cache,
		Conf:     conf,
		Password: NewPasswordManager(),
	}

	// 采集端刷新数据文件时丢弃所有缓存的报告
	s.Watch(func(event fsnotify.Event) error {
		if strings.HasSuffix(event.Name, ".db") {
			cache.Invalidate()
		}
		return nil
	})

	return a
}
