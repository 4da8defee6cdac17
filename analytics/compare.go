package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/afumu/gramtrace/internal/model"
	"github.com/afumu/gramtrace/store/types"
)

// 比较周期类型
const (
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

// ComparePeriods 计算每个账号当前周期与上一周期的对比。
// 周期锚定在账号最近一条帖子的时间，而不是当前时刻：
// 数据新鲜度定义"当前"，避免采集停滞时对比结果全为零。
//
// week/month 的当前周期是 (anchor-N, anchor]，下界开、上界闭；
// 上一周期是紧邻其前的等长区间 (anchor-2N, anchor-N]。
// custom 用显式起止时间作为当前周期，并自动推出等长的上一周期。
func (e *Engine) ComparePeriods(ctx context.Context, username, period string, customStart, customEnd time.Time) (map[string]*model.PeriodComparison, error) {
	switch period {
	case PeriodWeek, PeriodMonth:
	case PeriodCustom:
		if customStart.IsZero() || customEnd.IsZero() || !customEnd.After(customStart) {
			return nil, fmt.Errorf("自定义周期需要有效的起止时间")
		}
	default:
		return nil, fmt.Errorf("未知的比较周期: %s", period)
	}

	posts, err := e.store.GetPosts(ctx, types.PostQuery{Username: username, Since: time.Unix(0, 0)})
	if err != nil {
		return nil, err
	}

	byUser := make(map[string][]*model.Post)
	for _, p := range posts {
		if !p.HasTimestamp() {
			continue
		}
		byUser[p.Username] = append(byUser[p.Username], p)
	}

	result := make(map[string]*model.PeriodComparison, len(byUser))
	for user, ps := range byUser {
		if cmp := compareUserPeriods(user, ps, period, customStart, customEnd); cmp != nil {
			result[user] = cmp
		}
	}
	return result, nil
}

func compareUserPeriods(username string, posts []*model.Post, period string, customStart, customEnd time.Time) *model.PeriodComparison {
	if len(posts) == 0 {
		return nil
	}

	var curStart, curEnd, prevStart, prevEnd time.Time
	switch period {
	case PeriodCustom:
		curStart, curEnd = customStart, customEnd
		length := curEnd.Sub(curStart)
		prevStart, prevEnd = curStart.Add(-length), curStart
	default:
		n := 7
		if period == PeriodMonth {
			n = 30
		}
		// 锚点：该账号最近一条帖子
		anchor := posts[0].PostedAt
		for _, p := range posts[1:] {
			if p.PostedAt.After(anchor) {
				anchor = p.PostedAt
			}
		}
		curEnd = anchor
		curStart = anchor.AddDate(0, 0, -n)
		prevEnd = curStart
		prevStart = curStart.AddDate(0, 0, -n)
	}

	cur := model.PeriodStats{StartDate: curStart, EndDate: curEnd}
	prev := model.PeriodStats{StartDate: prevStart, EndDate: prevEnd}

	for _, p := range posts {
		t := p.PostedAt
		switch {
		case period == PeriodCustom && !t.Before(curStart) && !t.After(curEnd):
			accumulatePeriod(&cur, p)
		case period == PeriodCustom && !t.Before(prevStart) && t.Before(curStart):
			accumulatePeriod(&prev, p)
		case period != PeriodCustom && t.After(curStart) && !t.After(curEnd):
			// 恰好落在 curStart 的帖子属于上一周期
			accumulatePeriod(&cur, p)
		case period != PeriodCustom && t.After(prevStart) && !t.After(prevEnd):
			accumulatePeriod(&prev, p)
		}
	}

	finishPeriod(&cur)
	finishPeriod(&prev)

	return &model.PeriodComparison{
		Username:       username,
		Period:         period,
		CurrentPeriod:  cur,
		PreviousPeriod: prev,
		Changes: map[string]float64{
			"posts":            round2(pctChange(float64(prev.Posts), float64(cur.Posts))),
			"total_engagement": round2(pctChange(float64(prev.TotalEngagement), float64(cur.TotalEngagement))),
			"total_likes":      round2(pctChange(float64(prev.TotalLikes), float64(cur.TotalLikes))),
			"total_comments":   round2(pctChange(float64(prev.TotalComments), float64(cur.TotalComments))),
			"avg_engagement":   round2(pctChange(prev.AvgEngagement, cur.AvgEngagement)),
		},
	}
}

func accumulatePeriod(s *model.PeriodStats, p *model.Post) {
	s.Posts++
	s.TotalEngagement += p.Engagement()
	s.TotalLikes += p.LikeCount
	s.TotalComments += p.CommentCount
}

func finishPeriod(s *model.PeriodStats) {
	if s.Posts > 0 {
		s.AvgEngagement = round2(float64(s.TotalEngagement) / float64(s.Posts))
	}
}
