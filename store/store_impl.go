package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/core"
	"github.com/afumu/gramtrace/store/repo"
	"github.com/afumu/gramtrace/store/types"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultDBName 采集管道写入的默认数据文件名
const DefaultDBName = "gramtrace.db"

// DefaultStore 是 Store 接口的默认实现
type DefaultStore struct {
	pool    *core.ConnectionPool
	watcher *core.Watcher
	repo    *repo.Repository
}

// NewStore 初始化一个新的存储实例
func NewStore(baseDir string) (*DefaultStore, error) {
	// 1. 初始化核心组件
	pool := core.NewConnectionPool(baseDir)
	watcher, err := core.NewWatcher(baseDir)
	if err != nil {
		pool.CloseAll()
		return nil, err
	}

	// 2. 初始化仓储
	dbPath := filepath.Join(baseDir, DefaultDBName)
	r, err := repo.New(pool, dbPath)
	if err != nil {
		pool.CloseAll()
		watcher.Stop()
		return nil, err
	}

	// 3. 确保表结构存在（对采集端已写入的数据文件是无操作）
	if err := r.EnsureSchema(context.Background()); err != nil {
		pool.CloseAll()
		watcher.Stop()
		return nil, fmt.Errorf("初始化数据文件失败: %w", err)
	}

	s := &DefaultStore{
		pool:    pool,
		watcher: watcher,
		repo:    r,
	}

	// 4. 启动文件监听：采集端覆盖数据文件时刷新连接
	watcher.Start()
	watcher.AddCallback(func(event fsnotify.Event) {
		if !strings.HasSuffix(event.Name, ".db") {
			return
		}
		if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
			if err := s.Reload(); err != nil {
				log.Warn().Err(err).Str("file", event.Name).Msg("重载存储失败")
			}
		}
	})

	return s, nil
}

func (s *DefaultStore) GetProfiles(ctx context.Context, query types.ProfileQuery) ([]*model.Profile, error) {
	return s.repo.GetProfiles(ctx, query)
}

func (s *DefaultStore) GetPosts(ctx context.Context, query types.PostQuery) ([]*model.Post, error) {
	return s.repo.GetPosts(ctx, query)
}

func (s *DefaultStore) GetActiveStories(ctx context.Context, query types.StoryQuery) ([]*model.Story, error) {
	return s.repo.GetActiveStories(ctx, query)
}

func (s *DefaultStore) GetStoreStats(ctx context.Context) (*model.StoreStats, error) {
	return s.repo.GetStoreStats(ctx)
}

// Watch 注册数据目录变化的回调
func (s *DefaultStore) Watch(callback func(event fsnotify.Event) error) error {
	s.watcher.AddCallback(func(event fsnotify.Event) {
		if err := callback(event); err != nil {
			log.Warn().Err(err).Str("file", event.Name).Msg("Watch 回调执行失败")
		}
	})
	return nil
}

// Reload 关闭所有连接，后续查询会惰性重连
func (s *DefaultStore) Reload() error {
	return s.pool.CloseAll()
}

// Close 关闭存储
func (s *DefaultStore) Close() error {
	if err := s.watcher.Stop(); err != nil {
		log.Warn().Err(err).Msg("停止 watcher 失败")
	}
	return s.pool.CloseAll()
}
