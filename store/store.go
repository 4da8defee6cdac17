package store

import (
	"context"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
	"github.com/fsnotify/fsnotify"
)

// Store 定义了活动数据的统一只读接口。
// 数据由采集管道写入，分析引擎只通过这三个查询读取。
type Store interface {
	// 账号档案
	GetProfiles(ctx context.Context, query types.ProfileQuery) ([]*model.Profile, error)

	// 帖子
	GetPosts(ctx context.Context, query types.PostQuery) ([]*model.Post, error)

	// 快拍（只返回活跃的）
	GetActiveStories(ctx context.Context, query types.StoryQuery) ([]*model.Story, error)

	// 数据文件状态
	GetStoreStats(ctx context.Context) (*model.StoreStats, error)

	// Watch 注册文件系统事件的回调函数
	Watch(callback func(event fsnotify.Event) error) error

	// Reload 重新加载存储（刷新连接）
	Reload() error

	// 生命周期管理
	Close() error
}
