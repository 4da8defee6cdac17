package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/afumu/gramtrace/store/core"
	"github.com/afumu/gramtrace/store/types"
	"github.com/klauspost/compress/zstd"

	_ "github.com/mattn/go-sqlite3"
)

func newTestRepo(t *testing.T) (*Repository, *sql.DB) {
	tmpDir := t.TempDir()
	pool := core.NewConnectionPool(tmpDir)
	t.Cleanup(func() { pool.CloseAll() })

	dbPath := filepath.Join(tmpDir, "gramtrace.db")
	r, err := New(pool, dbPath)
	if err != nil {
		t.Fatalf("New 失败: %v", err)
	}
	if err := r.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema 失败: %v", err)
	}
	db, err := pool.GetConnection(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	return r, db
}

func insertPost(t *testing.T, db *sql.DB, id, username, mediaType string, likes, comments int, postedAt int64, payload []byte) {
	_, err := db.Exec(`INSERT INTO posts
		(id, username, media_type, caption, like_count, comment_count, play_count, is_collaboration, posted_at, raw_payload)
		VALUES (?, ?, ?, '', ?, ?, 0, 0, ?, ?)`,
		id, username, mediaType, likes, comments, postedAt, payload)
	if err != nil {
		t.Fatal(err)
	}
}

func TestRepo_GetProfiles(t *testing.T) {
	r, db := newTestRepo(t)

	_, err := db.Exec(`INSERT INTO profiles (username, full_name, follower_count, is_verified) VALUES
		('alice', 'Alice', 1000, 1), ('bob', 'Bob', 5000, 0)`)
	if err != nil {
		t.Fatal(err)
	}

	profiles, err := r.GetProfiles(context.Background(), types.ProfileQuery{})
	if err != nil {
		t.Fatalf("GetProfiles 失败: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("期望 2 个档案, 实际得到 %d", len(profiles))
	}
	// 按粉丝数降序
	if profiles[0].Username != "bob" {
		t.Errorf("期望 bob 排第一, 实际得到 %s", profiles[0].Username)
	}
	if !profiles[1].IsVerified {
		t.Error("期望 alice 为认证账号")
	}

	// 未知账号返回空列表
	none, err := r.GetProfiles(context.Background(), types.ProfileQuery{Username: "nobody"})
	if err != nil {
		t.Fatalf("GetProfiles 失败: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("未知账号期望空列表, 实际得到 %d", len(none))
	}
}

func TestRepo_GetPosts(t *testing.T) {
	r, db := newTestRepo(t)

	now := time.Now().Unix()
	insertPost(t, db, "p1", "alice", "image", 100, 20, now, nil)
	insertPost(t, db, "p2", "alice", "video", 10, 0, now-100, nil)
	insertPost(t, db, "p3", "alice", "carousel_album", 5, 0, 0, nil) // 无时间戳
	insertPost(t, db, "p4", "bob", "post", 7, 0, now, nil)
	insertPost(t, db, "old", "alice", "post", 1, 0, now-1000000, nil)

	posts, err := r.GetPosts(context.Background(), types.PostQuery{
		Username: "alice",
		Since:    time.Unix(now-200, 0),
	})
	if err != nil {
		t.Fatalf("GetPosts 失败: %v", err)
	}
	// 窗口内 2 条 + 无时间戳 1 条
	if len(posts) != 3 {
		t.Fatalf("期望 3 条帖子, 实际得到 %d", len(posts))
	}

	// 媒体类型别名在读取时规范化
	byID := map[string]string{}
	for _, p := range posts {
		byID[p.ID] = p.MediaType
	}
	if byID["p1"] != "post" || byID["p2"] != "reel" || byID["p3"] != "carousel" {
		t.Errorf("媒体类型规范化错误: %v", byID)
	}

	// 无时间戳的帖子 PostedAt 为零值
	for _, p := range posts {
		if p.ID == "p3" && p.HasTimestamp() {
			t.Error("posted_at=0 的帖子不应有时间戳")
		}
	}
}

func TestRepo_OptionalCountsPlainJSON(t *testing.T) {
	r, db := newTestRepo(t)

	payload, _ := json.Marshal(map[string]interface{}{
		"reshare_count": 5,
		"save_count":    "12", // 旧载荷里可能是字符串
		"unrelated":     true,
	})
	insertPost(t, db, "p1", "alice", "post", 1, 0, time.Now().Unix(), payload)

	posts, err := r.GetPosts(context.Background(), types.PostQuery{Since: time.Unix(0, 0)})
	if err != nil {
		t.Fatalf("GetPosts 失败: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("期望 1 条帖子, 实际得到 %d", len(posts))
	}
	if posts[0].ReshareCount != 5 || posts[0].SaveCount != 12 {
		t.Errorf("期望可选计数 5/12, 实际得到 %d/%d", posts[0].ReshareCount, posts[0].SaveCount)
	}
}

func TestRepo_OptionalCountsZstd(t *testing.T) {
	r, db := newTestRepo(t)

	raw, _ := json.Marshal(map[string]interface{}{"reshare_count": 9})
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := enc.EncodeAll(raw, nil)
	enc.Close()

	insertPost(t, db, "p1", "alice", "post", 1, 0, time.Now().Unix(), compressed)

	posts, err := r.GetPosts(context.Background(), types.PostQuery{Since: time.Unix(0, 0)})
	if err != nil {
		t.Fatalf("GetPosts 失败: %v", err)
	}
	if posts[0].ReshareCount != 9 {
		t.Errorf("期望从 zstd 载荷解出转发数 9, 实际得到 %d", posts[0].ReshareCount)
	}
}

func TestRepo_CorruptPayloadKeepsPost(t *testing.T) {
	r, db := newTestRepo(t)

	insertPost(t, db, "p1", "alice", "post", 42, 3, time.Now().Unix(), []byte("{not json"))

	posts, err := r.GetPosts(context.Background(), types.PostQuery{Since: time.Unix(0, 0)})
	if err != nil {
		t.Fatalf("GetPosts 失败: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("载荷损坏时帖子本身仍应返回, 实际得到 %d 条", len(posts))
	}
	if posts[0].LikeCount != 42 || posts[0].ReshareCount != 0 {
		t.Errorf("期望必有字段完整且可选计数为 0, 实际得到 %+v", posts[0])
	}
}

func TestRepo_GetActiveStories(t *testing.T) {
	r, db := newTestRepo(t)

	now := time.Now().Unix()
	_, err := db.Exec(`INSERT INTO stories (story_id, username, media_type, posted_at, expires_at) VALUES
		('s1', 'alice', 'image', ?, ?),
		('s2', 'alice', 'video', ?, ?),
		('s3', 'alice', 'image', ?, ?)`,
		now-3600, now+3600, // 活跃
		now-7200, now, // 恰好到期，不算活跃
		now-90000, now-3600) // 已过期
	if err != nil {
		t.Fatal(err)
	}

	stories, err := r.GetActiveStories(context.Background(), types.StoryQuery{ActiveAt: time.Unix(now, 0)})
	if err != nil {
		t.Fatalf("GetActiveStories 失败: %v", err)
	}
	if len(stories) != 1 || stories[0].StoryID != "s1" {
		t.Fatalf("期望只有 s1 活跃, 实际得到 %+v", stories)
	}
	if stories[0].MediaType != "post" {
		t.Errorf("期望媒体类型规范化为 post, 实际得到 %s", stories[0].MediaType)
	}
}

func TestRepo_GetStoreStats(t *testing.T) {
	r, db := newTestRepo(t)

	now := time.Now().Unix()
	_, err := db.Exec(`INSERT INTO profiles (username) VALUES ('alice')`)
	if err != nil {
		t.Fatal(err)
	}
	insertPost(t, db, "p1", "alice", "post", 1, 0, now-500, nil)
	insertPost(t, db, "p2", "alice", "post", 1, 0, now, nil)
	insertPost(t, db, "p3", "alice", "post", 1, 0, 0, nil) // 无时间戳

	stats, err := r.GetStoreStats(context.Background())
	if err != nil {
		t.Fatalf("GetStoreStats 失败: %v", err)
	}
	if stats.ProfileCount != 1 {
		t.Errorf("期望 1 个档案, 实际得到 %d", stats.ProfileCount)
	}
	// 无时间戳的帖子也计入总数
	if stats.PostCount != 3 {
		t.Errorf("期望 3 条帖子, 实际得到 %d", stats.PostCount)
	}
	if stats.EarliestPostTime != now-500 || stats.LatestPostTime != now {
		t.Errorf("时间范围错误: %d - %d", stats.EarliestPostTime, stats.LatestPostTime)
	}
}
