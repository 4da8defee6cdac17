package analytics

import "github.com/afumu/gramtrace/internal/model"

// BuildMediaTypeSection 按媒体类型聚合。三种规范类型即使没有帖子
// 也会出现在结果里；都没有帖子时 best_performing_type 为 null。
func BuildMediaTypeSection(w *WindowData) *model.MediaTypeSection {
	types := make(map[string]*model.MediaTypeStat, len(model.CanonicalMediaTypes))
	for _, t := range model.CanonicalMediaTypes {
		types[t] = &model.MediaTypeStat{Type: t}
	}

	for _, p := range w.Posts {
		st := types[p.MediaType]
		st.Count++
		st.TotalEngagement += p.Engagement()
	}

	var best *string
	var bestAvg float64
	for _, t := range model.CanonicalMediaTypes {
		st := types[t]
		if st.Count == 0 {
			continue
		}
		st.AvgEngagement = round2(float64(st.TotalEngagement) / float64(st.Count))
		if best == nil || st.AvgEngagement > bestAvg {
			name := t
			best = &name
			bestAvg = st.AvgEngagement
		}
	}

	return &model.MediaTypeSection{
		Types:              types,
		BestPerformingType: best,
		MediaTypeAnalysis:  types,
	}
}
