// Package analytics 实现分析聚合引擎：把存储中的账号活动记录
// （档案、帖子、快拍）转换为结构化的分析报告。
//
// 引擎是无状态且可重入的：每次调用只读一次存储，其余全部为
// 纯内存计算。唯一的跨调用状态是一个可选的建议性缓存，关闭
// 缓存不影响任何计算结果。
package analytics

import (
	"time"

	"github.com/afumu/gramtrace/store"
)

// Engine 分析引擎。所有公开方法都可以并发调用。
type Engine struct {
	store store.Store
	cache *Cache // 可以为 nil
	now   func() time.Time
}

// NewEngine 创建分析引擎。cache 传 nil 表示不启用缓存。
func NewEngine(s store.Store, cache *Cache) *Engine {
	return &Engine{
		store: s,
		cache: cache,
		now:   time.Now,
	}
}
