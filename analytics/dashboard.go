package analytics

import (
	"context"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
)

const dashboardTopProfiles = 5

// BuildDashboard 构建总览页数据。不限窗口，统计全部历史数据。
func (e *Engine) BuildDashboard(ctx context.Context) (*model.DashboardData, error) {
	profiles, err := e.store.GetProfiles(ctx, types.ProfileQuery{})
	if err != nil {
		return nil, err
	}
	posts, err := e.store.GetPosts(ctx, types.PostQuery{Since: time.Unix(0, 0)})
	if err != nil {
		return nil, err
	}
	stories, err := e.store.GetActiveStories(ctx, types.StoryQuery{ActiveAt: e.now()})
	if err != nil {
		return nil, err
	}
	stats, err := e.store.GetStoreStats(ctx)
	if err != nil {
		return nil, err
	}

	ov := model.DashboardOverview{
		TotalProfiles: len(profiles),
		TotalPosts:    len(posts),
		ActiveStories: len(stories),
	}
	for _, p := range posts {
		ov.TotalEngagement += p.Engagement()
		ov.TotalLikes += p.LikeCount
		ov.TotalComments += p.CommentCount
	}

	// GetProfiles 已按粉丝数降序返回
	limit := dashboardTopProfiles
	if len(profiles) < limit {
		limit = len(profiles)
	}
	ov.TopProfiles = make([]*model.ProfileDetail, 0, limit)
	for _, p := range profiles[:limit] {
		ov.TopProfiles = append(ov.TopProfiles, &model.ProfileDetail{
			Username:          p.Username,
			FullName:          p.FullName,
			FollowerCount:     p.FollowerCount,
			FollowingCount:    p.FollowingCount,
			MediaCount:        p.MediaCount,
			IsVerified:        p.IsVerified,
			IsPrivate:         p.IsPrivate,
			AvgEngagementRate: p.AvgEngagementRate,
		})
	}

	ov.Timeline = model.DashboardTimeline{
		EarliestPostTime: stats.EarliestPostTime,
		LatestPostTime:   stats.LatestPostTime,
	}
	if stats.EarliestPostTime > 0 && stats.LatestPostTime >= stats.EarliestPostTime {
		ov.Timeline.DurationDays = int((stats.LatestPostTime-stats.EarliestPostTime)/86400) + 1
	}

	return &model.DashboardData{Overview: ov}, nil
}
