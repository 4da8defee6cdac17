package analytics

import (
	"context"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
)

// BuildDailyChart 构建固定长度的每日时间序列，用于图表。
// 恰好 days 个桶，按自然日对齐，最后一个桶是今天，从旧到新排列。
func (e *Engine) BuildDailyChart(ctx context.Context, username string, days int) ([]*model.DailyBucket, error) {
	now := e.now()
	since := windowDate(now.AddDate(0, 0, -(days - 1)))

	posts, err := e.store.GetPosts(ctx, types.PostQuery{Username: username, Since: since})
	if err != nil {
		return nil, err
	}

	return buildDailyBuckets(posts, days, now), nil
}

// buildDailyBuckets 纯聚合部分，先零值初始化再逐帖累加。
// 发布时间缺失的帖子不会落入任何桶。
func buildDailyBuckets(posts []*model.Post, days int, now time.Time) []*model.DailyBucket {
	byDate := make(map[string]*model.DailyBucket, days)
	buckets := make([]*model.DailyBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		b := &model.DailyBucket{Date: date}
		byDate[date] = b
		buckets = append(buckets, b)
	}

	for _, p := range posts {
		if !p.HasTimestamp() {
			continue
		}
		b, ok := byDate[p.PostedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		b.PostsCount++
		b.TotalEngagement += p.Engagement()
		b.TotalLikes += p.LikeCount
		b.TotalComments += p.CommentCount
	}

	for _, b := range buckets {
		if b.PostsCount > 0 {
			b.AvgEngagementPerPost = round2(float64(b.TotalEngagement) / float64(b.PostsCount))
		}
	}
	return buckets
}
