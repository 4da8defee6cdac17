package analytics

import (
	"context"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
	"github.com/fsnotify/fsnotify"
)

// fakeStore 内存版 Store，测试用
type fakeStore struct {
	profiles []*model.Profile
	posts    []*model.Post
	stories  []*model.Story
}

func (f *fakeStore) GetProfiles(_ context.Context, q types.ProfileQuery) ([]*model.Profile, error) {
	out := make([]*model.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		if q.Username != "" && p.Username != q.Username {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) GetPosts(_ context.Context, q types.PostQuery) ([]*model.Post, error) {
	out := make([]*model.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if q.Username != "" && p.Username != q.Username {
			continue
		}
		if p.HasTimestamp() && p.PostedAt.Before(q.Since) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) GetActiveStories(_ context.Context, q types.StoryQuery) ([]*model.Story, error) {
	out := make([]*model.Story, 0, len(f.stories))
	for _, s := range f.stories {
		if q.Username != "" && s.Username != q.Username {
			continue
		}
		if !s.Active(q.ActiveAt) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStore) GetStoreStats(_ context.Context) (*model.StoreStats, error) {
	stats := &model.StoreStats{
		ProfileCount: len(f.profiles),
		PostCount:    len(f.posts),
		StoryCount:   len(f.stories),
	}
	for _, p := range f.posts {
		if !p.HasTimestamp() {
			continue
		}
		ts := p.PostedAt.Unix()
		if stats.EarliestPostTime == 0 || ts < stats.EarliestPostTime {
			stats.EarliestPostTime = ts
		}
		if ts > stats.LatestPostTime {
			stats.LatestPostTime = ts
		}
	}
	return stats, nil
}

func (f *fakeStore) Watch(func(event fsnotify.Event) error) error { return nil }
func (f *fakeStore) Reload() error                                { return nil }
func (f *fakeStore) Close() error                                 { return nil }

// newTestEngine 固定 now，保证窗口计算可重复
func newTestEngine(s *fakeStore, now time.Time, cache *Cache) *Engine {
	e := NewEngine(s, cache)
	e.now = func() time.Time { return now }
	return e
}

func makePost(id, username string, likes, comments int, postedAt time.Time) *model.Post {
	return &model.Post{
		ID:           id,
		Username:     username,
		MediaType:    model.MediaTypePost,
		LikeCount:    likes,
		CommentCount: comments,
		PostedAt:     postedAt,
	}
}
