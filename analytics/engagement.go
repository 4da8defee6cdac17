package analytics

import (
	"sort"

	"github.com/afumu/gramtrace/internal/model"
)

const (
	topPostsLimit    = 10
	bottomPostsLimit = 5
)

// BuildPostSection 计算帖子与互动分区。
// 点赞/评论总量复用窗口加载时算好的值，转发总量在这里补算。
func BuildPostSection(w *WindowData) *model.PostSection {
	sec := &model.PostSection{
		TotalPosts:          len(w.Posts),
		TotalLikes:          w.TotalLikes,
		TotalComments:       w.TotalComments,
		TotalEngagement:     w.TotalEngagement,
		MediaTypeCounts:     make(map[string]int),
		MediaTypeEngagement: make(map[string]int),
		TopPosts:            []*model.RankedPost{},
		BottomPosts:         []*model.RankedPost{},
		TopPerformers:       []*model.RankedPost{},
	}
	for _, t := range model.CanonicalMediaTypes {
		sec.MediaTypeCounts[t] = 0
		sec.MediaTypeEngagement[t] = 0
	}

	var reelViews, reelCount int
	for _, p := range w.Posts {
		sec.TotalReshares += p.ReshareCount
		sec.MediaTypeCounts[p.MediaType]++
		sec.MediaTypeEngagement[p.MediaType] += p.Engagement()
		if p.IsCollaboration {
			sec.CollaborationCount++
		}
		if p.MediaType == model.MediaTypeReel {
			reelViews += p.PlayCount
			reelCount++
		}
	}

	if reelCount > 0 {
		sec.AverageReelView = round2(float64(reelViews) / float64(reelCount))
	}

	if sec.TotalPosts == 0 {
		return sec
	}

	total := float64(sec.TotalPosts)
	sec.AvgLikes = round2(float64(sec.TotalLikes) / total)
	sec.AvgComments = round2(float64(sec.TotalComments) / total)
	sec.AvgEngagementPerPost = round2(float64(sec.TotalEngagement) / total)

	// 内容平均互动基于扩展互动量（含转发）
	perContent := float64(sec.TotalEngagement+sec.TotalReshares) / total
	sec.EngagementPerContent = round2(perContent)

	ranked := make([]*model.RankedPost, 0, len(w.Posts))
	for _, p := range w.Posts {
		ranked = append(ranked, rankedPost(p))
	}

	// 并列时保持原始顺序
	top := make([]*model.RankedPost, len(ranked))
	copy(top, ranked)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].ExtendedEngagement > top[j].ExtendedEngagement
	})
	if len(top) > topPostsLimit {
		top = top[:topPostsLimit]
	}
	sec.TopPosts = top

	bottom := make([]*model.RankedPost, len(ranked))
	copy(bottom, ranked)
	sort.SliceStable(bottom, func(i, j int) bool {
		return bottom[i].ExtendedEngagement < bottom[j].ExtendedEngagement
	})
	if len(bottom) > bottomPostsLimit {
		bottom = bottom[:bottomPostsLimit]
	}
	sec.BottomPosts = bottom

	for _, rp := range ranked {
		if float64(rp.ExtendedEngagement) > perContent {
			sec.TopPerformers = append(sec.TopPerformers, rp)
		}
	}

	return sec
}

func rankedPost(p *model.Post) *model.RankedPost {
	rp := &model.RankedPost{
		PostID:             p.ID,
		Username:           p.Username,
		MediaType:          p.MediaType,
		Caption:            p.Caption,
		LikeCount:          p.LikeCount,
		CommentCount:       p.CommentCount,
		ReshareCount:       p.ReshareCount,
		Engagement:         p.Engagement(),
		ExtendedEngagement: p.ExtendedEngagement(),
	}
	if p.HasTimestamp() {
		rp.PostedAt = p.PostedAt.Unix()
	}
	return rp
}
