package analytics

import (
	"testing"
	"time"

	"github.com/afumu/gramtrace/internal/model"
)

func TestNormalizeMediaType(t *testing.T) {
	cases := map[string]string{
		"post":           "post",
		"reel":           "reel",
		"carousel":       "carousel",
		"carousel_album": "carousel",
		"video":          "reel",
		"image":          "post",
		"igtv":           "post",
		"":               "post",
	}
	for in, want := range cases {
		if got := model.NormalizeMediaType(in); got != want {
			t.Errorf("NormalizeMediaType(%q) 期望 %s, 实际得到 %s", in, want, got)
		}
	}
}

func TestBuildMediaTypeSection(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	posts := []*model.Post{
		{ID: "p1", MediaType: model.MediaTypePost, LikeCount: 10, PostedAt: now},
		{ID: "p2", MediaType: model.MediaTypeReel, LikeCount: 100, PostedAt: now},
		{ID: "p3", MediaType: model.MediaTypeReel, LikeCount: 50, PostedAt: now},
	}
	sec := BuildMediaTypeSection(&WindowData{Posts: posts})

	if len(sec.Types) != 3 {
		t.Fatalf("期望 3 种规范类型都有桶, 实际得到 %d", len(sec.Types))
	}
	if sec.Types[model.MediaTypeCarousel].Count != 0 {
		t.Errorf("期望 carousel 计数为 0, 实际得到 %d", sec.Types[model.MediaTypeCarousel].Count)
	}
	if sec.Types[model.MediaTypeReel].AvgEngagement != 75 {
		t.Errorf("期望 reel 平均互动 75, 实际得到 %v", sec.Types[model.MediaTypeReel].AvgEngagement)
	}
	if sec.BestPerformingType == nil || *sec.BestPerformingType != model.MediaTypeReel {
		t.Errorf("期望最佳类型 reel, 实际得到 %v", sec.BestPerformingType)
	}
}

func TestMediaTypeSectionEmpty(t *testing.T) {
	sec := BuildMediaTypeSection(&WindowData{})
	if sec.BestPerformingType != nil {
		t.Errorf("无帖子时期望最佳类型为 nil, 实际得到 %v", *sec.BestPerformingType)
	}
	for _, mt := range model.CanonicalMediaTypes {
		st, ok := sec.Types[mt]
		if !ok || st.Count != 0 {
			t.Errorf("期望类型 %s 零值初始化", mt)
		}
	}
}

func TestMediaTypeBestTieKeepsCanonicalOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	posts := []*model.Post{
		{ID: "p1", MediaType: model.MediaTypeReel, LikeCount: 10, PostedAt: now},
		{ID: "p2", MediaType: model.MediaTypePost, LikeCount: 10, PostedAt: now},
	}
	sec := BuildMediaTypeSection(&WindowData{Posts: posts})
	// 平均互动并列时取规范顺序靠前的类型
	if sec.BestPerformingType == nil || *sec.BestPerformingType != model.MediaTypePost {
		t.Errorf("并列时期望取 post, 实际得到 %v", sec.BestPerformingType)
	}
}
