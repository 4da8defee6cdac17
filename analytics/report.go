package analytics

import (
	"context"
	"errors"
	"fmt"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/google/uuid"
)

// DefaultDays 未指定窗口时的默认天数
const DefaultDays = 30

// ErrUnknownSection 请求了不存在的报告分区
var ErrUnknownSection = errors.New("未知的报告分区")

// AssembleReport 组装一份报告。只计算请求的分区，所有分区
// 共享同一份窗口数据，保证反映同一个快照。
// sections 为空表示全部分区；未知分区名返回错误。
func (e *Engine) AssembleReport(ctx context.Context, username string, days int, sections []string) (*model.Report, error) {
	if days <= 0 {
		days = DefaultDays
	}
	requested, err := normalizeSections(sections)
	if err != nil {
		return nil, err
	}

	if rep, ok := e.cache.Get(username, days, requested); ok {
		return rep, nil
	}

	w, err := e.LoadWindow(ctx, username, days)
	if err != nil {
		return nil, err
	}

	rep := &model.Report{
		Metadata: model.ReportMetadata{
			ReportID:        uuid.NewString(),
			GeneratedAt:     e.now(),
			Username:        username,
			Days:            days,
			StartDate:       w.StartDate,
			EndDate:         w.EndDate,
			TotalProfiles:   len(w.Profiles),
			TotalPosts:      len(w.Posts),
			TotalEngagement: w.TotalEngagement,
			Sections:        requested,
		},
	}

	for _, s := range requested {
		switch s {
		case model.SectionProfiles:
			rep.Profiles = BuildProfileSection(w)
		case model.SectionPosts:
			rep.Posts = BuildPostSection(w)
		case model.SectionHashtags:
			rep.Hashtags = BuildHashtagSection(w)
		case model.SectionMediaTypes:
			rep.MediaTypes = BuildMediaTypeSection(w)
		case model.SectionPostingTimes:
			rep.PostingTimes = BuildPostingTimeSection(w)
		case model.SectionEngagementTrends:
			rep.EngagementTrends = BuildEngagementTrendSection(w, days)
		case model.SectionPerformance:
			rep.Performance = BuildPerformanceSection(w)
		case model.SectionStories:
			rep.Stories = BuildStorySection(w)
		}
	}

	e.cache.Set(username, days, requested, rep)
	return rep, nil
}

// normalizeSections 校验并按固定顺序整理分区列表。
// 去重；空列表展开为全部分区。
func normalizeSections(sections []string) ([]string, error) {
	if len(sections) == 0 {
		out := make([]string, len(model.AllSections))
		copy(out, model.AllSections)
		return out, nil
	}

	valid := make(map[string]bool, len(model.AllSections))
	for _, s := range model.AllSections {
		valid[s] = true
	}
	requested := make(map[string]bool, len(sections))
	for _, s := range sections {
		if !valid[s] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSection, s)
		}
		requested[s] = true
	}

	out := make([]string, 0, len(requested))
	for _, s := range model.AllSections {
		if requested[s] {
			out = append(out, s)
		}
	}
	return out, nil
}
