package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/afumu/gramtrace/internal/model"
)

const (
	hashtagRankLimit   = 15
	hashtagLegacyLimit = 10
)

// 匹配 #标签，支持 Unicode 字母数字和下划线，大小写不敏感（统一转小写）
var hashtagRe = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// BuildHashtagSection 提取并聚合话题标签。
// 同一帖子内重复出现的标签只计一次；互动量用基础互动量。
// 三个排行视图来自同一份底层统计，不重复计算。
func BuildHashtagSection(w *WindowData) *model.HashtagSection {
	stats := make(map[string]*model.HashtagStat)
	var order []string // 首次出现顺序，保证排序并列时结果稳定

	for _, p := range w.Posts {
		if p.Caption == "" {
			continue
		}
		seen := make(map[string]bool)
		for _, m := range hashtagRe.FindAllStringSubmatch(p.Caption, -1) {
			tag := strings.ToLower(m[1])
			if seen[tag] {
				continue
			}
			seen[tag] = true

			st, ok := stats[tag]
			if !ok {
				st = &model.HashtagStat{Hashtag: tag}
				stats[tag] = st
				order = append(order, tag)
			}
			st.UsageCount++
			st.TotalEngagement += p.Engagement()
		}
	}

	base := make([]*model.HashtagStat, 0, len(order))
	for _, tag := range order {
		st := stats[tag]
		if st.UsageCount > 0 {
			st.AvgEngagement = round2(float64(st.TotalEngagement) / float64(st.UsageCount))
		}
		base = append(base, st)
	}

	byTotal := make([]*model.HashtagStat, len(base))
	copy(byTotal, base)
	sort.SliceStable(byTotal, func(i, j int) bool {
		return byTotal[i].TotalEngagement > byTotal[j].TotalEngagement
	})

	byAvg := make([]*model.HashtagStat, len(base))
	copy(byAvg, base)
	sort.SliceStable(byAvg, func(i, j int) bool {
		return byAvg[i].AvgEngagement > byAvg[j].AvgEngagement
	})

	trending := make([]*model.TrendingHashtag, 0, hashtagRankLimit)
	for _, st := range capHashtags(byTotal, hashtagRankLimit) {
		trending = append(trending, &model.TrendingHashtag{
			Hashtag:         "#" + st.Hashtag,
			UsageCount:      st.UsageCount,
			TotalEngagement: humanizeCount(st.TotalEngagement),
		})
	}

	return &model.HashtagSection{
		UniqueHashtags:    len(base),
		ByTotalEngagement: capHashtags(byTotal, hashtagRankLimit),
		ByAvgEngagement:   capHashtags(byAvg, hashtagRankLimit),
		Trending:          trending,
		TopHashtags:       capHashtags(byTotal, hashtagLegacyLimit),
	}
}

func capHashtags(s []*model.HashtagStat, n int) []*model.HashtagStat {
	if len(s) > n {
		return s[:n]
	}
	return s
}
