package analytics

import "github.com/afumu/gramtrace/internal/model"

// BuildStorySection 汇总当前活跃的快拍。
// 窗口加载时已按过期时间过滤，这里只做整形。
func BuildStorySection(w *WindowData) *model.StorySection {
	sec := &model.StorySection{
		ActiveCount: len(w.Stories),
		Stories:     make([]*model.StoryInfo, 0, len(w.Stories)),
	}
	for _, s := range w.Stories {
		info := &model.StoryInfo{
			StoryID:   s.StoryID,
			Username:  s.Username,
			MediaType: s.MediaType,
		}
		if !s.PostedAt.IsZero() {
			info.PostedAt = s.PostedAt.Unix()
		}
		if !s.ExpiresAt.IsZero() {
			info.ExpiresAt = s.ExpiresAt.Unix()
		}
		sec.Stories = append(sec.Stories, info)
	}
	return sec
}
