package export

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/afumu/gramtrace/analytics"
	"github.com/afumu/gramtrace/internal/model"
)

// Service 负责把分析报告渲染成可下载的文件。
// 所有格式共享同一份报告数据，渲染层只做排版。
type Service struct {
	Engine *analytics.Engine
}

// buildReport 拉取一份全分区报告，各格式导出共用。
func (s *Service) buildReport(ctx context.Context, username string, days int) (*model.Report, error) {
	return s.Engine.AssembleReport(ctx, username, days, nil)
}

// reportTable 报告的一个表格块：标题 + 表头 + 数据行
type reportTable struct {
	Title  string
	Header []string
	Rows   [][]string
}

// reportTables 把报告展开成统一的表格块序列。
// CSV/XLSX 直接写表格，DOCX/PDF 按块分段排版。
func reportTables(rep *model.Report) []reportTable {
	var tables []reportTable

	meta := reportTable{
		Title:  "报告概览",
		Header: []string{"指标", "值"},
		Rows: [][]string{
			{"报告编号", rep.Metadata.ReportID},
			{"生成时间", rep.Metadata.GeneratedAt.Format("2006-01-02 15:04:05")},
			{"统计窗口(天)", strconv.Itoa(rep.Metadata.Days)},
			{"账号数", strconv.Itoa(rep.Metadata.TotalProfiles)},
			{"帖子数", strconv.Itoa(rep.Metadata.TotalPosts)},
			{"总互动量", strconv.Itoa(rep.Metadata.TotalEngagement)},
		},
	}
	if rep.Metadata.Username != "" {
		meta.Rows = append(meta.Rows, []string{"过滤账号", rep.Metadata.Username})
	}
	tables = append(tables, meta)

	if sec := rep.Profiles; sec != nil {
		t := reportTable{
			Title:  "账号档案",
			Header: []string{"账号", "粉丝数", "关注数", "帖子数", "认证", "互动率(%)"},
		}
		for _, username := range sortedProfileNames(sec) {
			p := sec.Profiles[username]
			t.Rows = append(t.Rows, []string{
				p.Username,
				strconv.Itoa(p.FollowerCount),
				strconv.Itoa(p.FollowingCount),
				strconv.Itoa(p.MediaCount),
				boolText(p.IsVerified),
				fmt.Sprintf("%.2f", p.AvgEngagementRate),
			})
		}
		tables = append(tables, t)
	}

	if sec := rep.Posts; sec != nil {
		t := reportTable{
			Title:  "热门帖子",
			Header: []string{"帖子", "账号", "类型", "点赞", "评论", "转发", "互动量"},
		}
		for _, p := range sec.TopPosts {
			t.Rows = append(t.Rows, []string{
				p.PostID,
				p.Username,
				p.MediaType,
				strconv.Itoa(p.LikeCount),
				strconv.Itoa(p.CommentCount),
				strconv.Itoa(p.ReshareCount),
				strconv.Itoa(p.ExtendedEngagement),
			})
		}
		tables = append(tables, t)
	}

	if sec := rep.Hashtags; sec != nil {
		t := reportTable{
			Title:  "话题标签",
			Header: []string{"标签", "使用次数", "总互动量", "平均互动量"},
		}
		for _, h := range sec.ByTotalEngagement {
			t.Rows = append(t.Rows, []string{
				"#" + h.Hashtag,
				strconv.Itoa(h.UsageCount),
				strconv.Itoa(h.TotalEngagement),
				fmt.Sprintf("%.2f", h.AvgEngagement),
			})
		}
		tables = append(tables, t)
	}

	if sec := rep.MediaTypes; sec != nil {
		t := reportTable{
			Title:  "媒体类型",
			Header: []string{"类型", "帖子数", "总互动量", "平均互动量"},
		}
		for _, mt := range model.CanonicalMediaTypes {
			st := sec.Types[mt]
			t.Rows = append(t.Rows, []string{
				st.Type,
				strconv.Itoa(st.Count),
				strconv.Itoa(st.TotalEngagement),
				fmt.Sprintf("%.2f", st.AvgEngagement),
			})
		}
		tables = append(tables, t)
	}

	if sec := rep.PostingTimes; sec != nil {
		t := reportTable{
			Title:  "最佳发布时间",
			Header: []string{"小时", "帖子数", "平均互动量"},
		}
		for _, h := range sec.BestHours {
			t.Rows = append(t.Rows, []string{
				fmt.Sprintf("%02d:00", h.Hour),
				strconv.Itoa(h.Count),
				fmt.Sprintf("%.2f", h.AvgEngagement),
			})
		}
		t.Rows = append(t.Rows, []string{"偏好时段", sec.FavouredPostingTime, ""})
		tables = append(tables, t)
	}

	if sec := rep.Performance; sec != nil {
		t := reportTable{
			Title:  "综合表现",
			Header: []string{"指标", "值"},
			Rows: [][]string{
				{"综合评分", fmt.Sprintf("%.0f", sec.PerformanceScore)},
				{"互动率(%)", fmt.Sprintf("%.2f", sec.EngagementRate)},
				{"内容质量", fmt.Sprintf("%.2f", sec.ContentQuality)},
			},
		}
		for _, in := range sec.Insights {
			t.Rows = append(t.Rows, []string{"结论", in})
		}
		for _, rec := range sec.Recommendations {
			t.Rows = append(t.Rows, []string{"建议", rec})
		}
		tables = append(tables, t)
	}

	return tables
}

// sortedProfileNames 按粉丝数降序排列账号名，保证导出顺序稳定
func sortedProfileNames(sec *model.ProfileSection) []string {
	names := make([]string, 0, len(sec.Profiles))
	for name := range sec.Profiles {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := sec.Profiles[names[i]], sec.Profiles[names[j]]
		if a.FollowerCount != b.FollowerCount {
			return a.FollowerCount > b.FollowerCount
		}
		return names[i] < names[j]
	})
	return names
}

func boolText(b bool) string {
	if b {
		return "是"
	}
	return "否"
}
