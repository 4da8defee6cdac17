package analytics

import (
	"testing"
	"time"

	"github.com/afumu/gramtrace/internal/model"
)

func TestBuildEngagementTrendSection(t *testing.T) {
	end := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := &WindowData{
		EndDate: end,
		Posts: []*model.Post{
			makePost("p1", "alice", 100, 0, end),
			makePost("p2", "alice", 50, 0, end.AddDate(0, 0, -1)),
			makePost("p3", "alice", 10, 0, time.Time{}), // 无时间戳
		},
	}
	sec := BuildEngagementTrendSection(w, 14)

	if len(sec.Daily) != 14 {
		t.Fatalf("期望 14 个日期点, 实际得到 %d", len(sec.Daily))
	}
	// 从旧到新，最后一个是 EndDate 当天
	last := sec.Daily[len(sec.Daily)-1]
	if last.Date != "2025-06-15" || last.Posts != 1 || last.Engagement != 100 {
		t.Errorf("期望最后一天 2025-06-15 有 1 条帖子互动 100, 实际得到 %+v", last)
	}
	if sec.Daily[0].Date != "2025-06-02" {
		t.Errorf("期望序列从 2025-06-02 开始, 实际得到 %s", sec.Daily[0].Date)
	}
	var totalPosts int
	for _, pt := range sec.Daily {
		totalPosts += pt.Posts
	}
	if totalPosts != 2 {
		t.Errorf("无时间戳帖子不应落入任何日期点, 期望 2, 实际得到 %d", totalPosts)
	}
}

func TestWeeklyTrend(t *testing.T) {
	// 前 7 天无互动，后 7 天有互动 => 100
	daily := make([]*model.DailyTrendPoint, 14)
	for i := range daily {
		daily[i] = &model.DailyTrendPoint{}
	}
	daily[13].Engagement = 70
	if got := weeklyTrend(daily); got != 100 {
		t.Errorf("基数为零且当前有互动时期望 100, 实际得到 %v", got)
	}

	// 两段都为零 => 0
	for i := range daily {
		daily[i].Engagement = 0
	}
	if got := weeklyTrend(daily); got != 0 {
		t.Errorf("两段都为零时期望 0, 实际得到 %v", got)
	}

	// 前 7 天日均 10，后 7 天日均 15 => +50
	for i := 0; i < 7; i++ {
		daily[i].Engagement = 10
	}
	for i := 7; i < 14; i++ {
		daily[i].Engagement = 15
	}
	if got := weeklyTrend(daily); got != 50 {
		t.Errorf("期望周趋势 +50%%, 实际得到 %v", got)
	}
}

func TestWeeklyTrendShortWindow(t *testing.T) {
	daily := []*model.DailyTrendPoint{
		{Engagement: 10},
		{Engagement: 20},
		{Engagement: 30},
	}
	// 不足 14 天时不 panic，上一段为空视为基数 0
	if got := weeklyTrend(daily); got != 100 {
		t.Errorf("短窗口期望 100, 实际得到 %v", got)
	}
}

func TestPctChange(t *testing.T) {
	cases := []struct {
		prev, cur, want float64
	}{
		{0, 0, 0},
		{0, 5, 100},
		{10, 15, 50},
		{20, 10, -50},
	}
	for _, c := range cases {
		if got := pctChange(c.prev, c.cur); got != c.want {
			t.Errorf("pctChange(%v, %v) 期望 %v, 实际得到 %v", c.prev, c.cur, c.want, got)
		}
	}
}

func TestHumanizeCount(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		987:     "987",
		1234:    "1.2K",
		3400000: "3.4M",
	}
	for n, want := range cases {
		if got := humanizeCount(n); got != want {
			t.Errorf("humanizeCount(%d) 期望 %s, 实际得到 %s", n, want, got)
		}
	}
}
