package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/afumu/gramtrace/store/types"

	_ "github.com/mattn/go-sqlite3"
)

func TestDefaultStore_Integration(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := NewStore(tmpDir)
	if err != nil {
		t.Fatalf("NewStore 失败: %v", err)
	}
	defer s.Close()

	// NewStore 已建表，直接向数据文件写入测试数据
	dbPath := filepath.Join(tmpDir, DefaultDBName)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	now := time.Now().Unix()
	if _, err := db.Exec(`INSERT INTO profiles (username, follower_count) VALUES ('alice', 1000)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO posts (id, username, media_type, like_count, comment_count, posted_at)
		VALUES ('p1', 'alice', 'post', 100, 20, ?)`, now); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()

	profiles, err := s.GetProfiles(ctx, types.ProfileQuery{})
	if err != nil {
		t.Fatalf("GetProfiles 失败: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Username != "alice" {
		t.Errorf("期望 alice 一个档案, 实际得到 %+v", profiles)
	}

	posts, err := s.GetPosts(ctx, types.PostQuery{Since: time.Unix(0, 0)})
	if err != nil {
		t.Fatalf("GetPosts 失败: %v", err)
	}
	if len(posts) != 1 || posts[0].Engagement() != 120 {
		t.Errorf("期望 1 条帖子互动量 120, 实际得到 %+v", posts)
	}

	// Reload 后连接惰性重建，查询仍然可用
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload 失败: %v", err)
	}
	stats, err := s.GetStoreStats(ctx)
	if err != nil {
		t.Fatalf("GetStoreStats 失败: %v", err)
	}
	if stats.ProfileCount != 1 || stats.PostCount != 1 {
		t.Errorf("期望 1 档案 1 帖子, 实际得到 %+v", stats)
	}
}
