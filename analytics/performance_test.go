package analytics

import (
	"testing"
	"time"

	"github.com/afumu/gramtrace/internal/model"
)

func TestBuildPerformanceSectionEmpty(t *testing.T) {
	rep := BuildPerformanceSection(&WindowData{})
	if rep.PerformanceScore != 0 || rep.EngagementRate != 0 || rep.ContentQuality != 0 {
		t.Errorf("无帖子时期望全零结构, 实际得到 %+v", rep)
	}
	if rep.Insights == nil || rep.Recommendations == nil {
		t.Error("无帖子时 insights/recommendations 应为空切片而不是 nil")
	}
}

func TestBuildPerformanceSection(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := &WindowData{
		Profiles: []*model.Profile{{Username: "alice", FollowerCount: 1000}},
		Posts: []*model.Post{
			{ID: "p1", MediaType: model.MediaTypePost, Caption: "hi", LikeCount: 40, PostedAt: now},
			{ID: "p2", MediaType: model.MediaTypeReel, Caption: "yo", LikeCount: 40, PostedAt: now},
		},
		TotalEngagement: 80,
	}
	rep := BuildPerformanceSection(w)

	// 日均互动 40 / 1000 粉丝 = 4% => 高互动档
	if rep.EngagementRate != 4 {
		t.Errorf("期望互动率 4%%, 实际得到 %v", rep.EngagementRate)
	}
	if rep.PerformanceScore < 0 || rep.PerformanceScore > 100 {
		t.Errorf("评分应落在 [0,100], 实际得到 %v", rep.PerformanceScore)
	}
	if rep.PerformanceScore != float64(int(rep.PerformanceScore)) {
		t.Errorf("最终评分应为整数, 实际得到 %v", rep.PerformanceScore)
	}

	// 2 条帖子，4 个质量因子齐全
	if len(rep.QualityFactors) != 4 {
		t.Errorf("期望 4 个质量因子, 实际得到 %d: %+v", len(rep.QualityFactors), rep.QualityFactors)
	}
	if _, ok := rep.QualityFactors["engagement_consistency"]; !ok {
		t.Error("2 条以上帖子应包含 engagement_consistency 因子")
	}
	if rep.QualityFactors["caption_usage"] != 100 {
		t.Errorf("全部带文案时期望 caption_usage 100, 实际得到 %v", rep.QualityFactors["caption_usage"])
	}
	if rep.QualityFactors["diversity"] != 66.66 {
		t.Errorf("2 种类型期望 diversity 66.66, 实际得到 %v", rep.QualityFactors["diversity"])
	}

	if len(rep.Insights) == 0 {
		t.Error("高互动率应产生至少一条结论")
	}
	// 少于 10 条帖子要给出频率建议
	var hasFreq bool
	for _, r := range rep.Recommendations {
		if r == "Post more consistently to keep the audience engaged" {
			hasFreq = true
		}
	}
	if !hasFreq {
		t.Errorf("少于 10 条帖子时期望频率建议, 实际得到 %+v", rep.Recommendations)
	}
}

func TestPerformanceSinglePostSkipsConsistency(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := &WindowData{
		Profiles:        []*model.Profile{{Username: "alice", FollowerCount: 100}},
		Posts:           []*model.Post{{ID: "p1", MediaType: model.MediaTypePost, LikeCount: 10, PostedAt: now}},
		TotalEngagement: 10,
	}
	rep := BuildPerformanceSection(w)

	if _, ok := rep.QualityFactors["engagement_consistency"]; ok {
		t.Error("单条帖子不应包含 engagement_consistency 因子")
	}
	if len(rep.QualityFactors) != 3 {
		t.Errorf("单条帖子期望 3 个质量因子, 实际得到 %d", len(rep.QualityFactors))
	}
	// 单一类型要给出多样性建议
	var hasDiversity bool
	for _, r := range rep.Recommendations {
		if r == "Diversify content formats - try reels and carousels" {
			hasDiversity = true
		}
	}
	if !hasDiversity {
		t.Errorf("单一类型时期望多样性建议, 实际得到 %+v", rep.Recommendations)
	}
}

func TestPerformanceZeroFollowers(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	w := &WindowData{
		Posts:           []*model.Post{{ID: "p1", MediaType: model.MediaTypePost, LikeCount: 10, PostedAt: now}},
		TotalEngagement: 10,
	}
	rep := BuildPerformanceSection(w)
	if rep.EngagementRate != 0 {
		t.Errorf("无粉丝数据时互动率应为 0, 实际得到 %v", rep.EngagementRate)
	}
}
