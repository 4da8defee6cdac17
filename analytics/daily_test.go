package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/afumu/gramtrace/internal/model"
)

func TestBuildDailyBuckets(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	posts := []*model.Post{
		{ID: "p1", Username: "alice", LikeCount: 10, CommentCount: 2, PostedAt: now.Add(-2 * time.Hour)},
		{ID: "p2", Username: "alice", LikeCount: 20, CommentCount: 0, PostedAt: now.AddDate(0, 0, -1)},
		{ID: "p3", Username: "alice", LikeCount: 5, CommentCount: 0, PostedAt: now.AddDate(0, 0, -1)},
		{ID: "p4", Username: "alice", LikeCount: 99, CommentCount: 0}, // 无时间戳
	}

	buckets := buildDailyBuckets(posts, 7, now)

	if len(buckets) != 7 {
		t.Fatalf("期望恰好 7 个桶, 实际得到 %d", len(buckets))
	}
	// 连续自然日，最后一个是今天
	if buckets[6].Date != "2025-06-15" || buckets[0].Date != "2025-06-09" {
		t.Errorf("期望 2025-06-09 到 2025-06-15, 实际得到 %s 到 %s", buckets[0].Date, buckets[6].Date)
	}
	for i := 1; i < len(buckets); i++ {
		prev, _ := time.Parse("2006-01-02", buckets[i-1].Date)
		cur, _ := time.Parse("2006-01-02", buckets[i].Date)
		if cur.Sub(prev) != 24*time.Hour {
			t.Errorf("桶 %d 与前一桶不连续: %s -> %s", i, buckets[i-1].Date, buckets[i].Date)
		}
	}

	var total int
	for _, b := range buckets {
		total += b.PostsCount
	}
	if total != 3 {
		t.Errorf("期望 3 条有时间戳的帖子入桶, 实际得到 %d", total)
	}

	yesterday := buckets[5]
	if yesterday.PostsCount != 2 || yesterday.TotalEngagement != 25 {
		t.Errorf("期望昨天 2 条帖子互动 25, 实际得到 %+v", yesterday)
	}
	if yesterday.AvgEngagementPerPost != 12.5 {
		t.Errorf("期望昨天平均互动 12.5, 实际得到 %v", yesterday.AvgEngagementPerPost)
	}
	if buckets[0].PostsCount != 0 || buckets[0].AvgEngagementPerPost != 0 {
		t.Errorf("无帖子的桶应保持零值, 实际得到 %+v", buckets[0])
	}
}

func TestBuildDailyChart(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	fs := &fakeStore{
		posts: []*model.Post{
			makePost("p1", "alice", 10, 0, now.Add(-time.Hour)),
			makePost("p2", "bob", 20, 0, now.Add(-time.Hour)),
			makePost("p3", "alice", 30, 0, now.AddDate(0, 0, -30)), // 窗口外
		},
	}
	e := newTestEngine(fs, now, nil)

	buckets, err := e.BuildDailyChart(context.Background(), "alice", 7)
	if err != nil {
		t.Fatalf("BuildDailyChart 失败: %v", err)
	}
	if len(buckets) != 7 {
		t.Fatalf("期望 7 个桶, 实际得到 %d", len(buckets))
	}
	if buckets[6].PostsCount != 1 || buckets[6].TotalEngagement != 10 {
		t.Errorf("期望只统计 alice 今天的 1 条帖子, 实际得到 %+v", buckets[6])
	}
}
