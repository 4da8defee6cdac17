package analytics

import (
	"context"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
)

// WindowData 一次报告计算的共享基础数据。
// 总量只在加载时计算一次，所有分区复用，保证跨分区一致。
type WindowData struct {
	Profiles []*model.Profile
	Posts    []*model.Post
	Stories  []*model.Story

	TotalEngagement int
	TotalLikes      int
	TotalComments   int

	StartDate time.Time
	EndDate   time.Time
}

// LoadWindow 加载时间窗口内的全部基础数据。
// 帖子按发布时间 >= now-days 过滤；快拍只取当前活跃的，
// 与窗口天数无关。未知账号返回空集合而不是错误。
func (e *Engine) LoadWindow(ctx context.Context, username string, days int) (*WindowData, error) {
	now := e.now()
	w := &WindowData{
		StartDate: now.AddDate(0, 0, -days),
		EndDate:   now,
	}

	profiles, err := e.store.GetProfiles(ctx, types.ProfileQuery{Username: username})
	if err != nil {
		return nil, err
	}
	w.Profiles = profiles

	posts, err := e.store.GetPosts(ctx, types.PostQuery{Username: username, Since: w.StartDate})
	if err != nil {
		return nil, err
	}
	w.Posts = posts

	stories, err := e.store.GetActiveStories(ctx, types.StoryQuery{Username: username, ActiveAt: now})
	if err != nil {
		return nil, err
	}
	w.Stories = stories

	for _, p := range posts {
		w.TotalEngagement += p.Engagement()
		w.TotalLikes += p.LikeCount
		w.TotalComments += p.CommentCount
	}

	return w, nil
}
