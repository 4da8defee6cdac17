package analytics

import (
	"time"

	"github.com/afumu/gramtrace/internal/model"
)

const trendWeekSpan = 7

// BuildEngagementTrendSection 构建逐日互动趋势。
// 序列覆盖窗口内每一天（含无帖子的零值天），从最旧到最新。
func BuildEngagementTrendSection(w *WindowData, days int) *model.EngagementTrendSection {
	byDate := make(map[string]*model.DailyTrendPoint, days)
	daily := make([]*model.DailyTrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := w.EndDate.AddDate(0, 0, -i).Format("2006-01-02")
		pt := &model.DailyTrendPoint{Date: date}
		byDate[date] = pt
		daily = append(daily, pt)
	}

	for _, p := range w.Posts {
		if !p.HasTimestamp() {
			continue
		}
		pt, ok := byDate[p.PostedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		pt.Posts++
		pt.Engagement += p.Engagement()
	}

	for _, pt := range daily {
		if pt.Posts > 0 {
			pt.AvgEngagement = round2(float64(pt.Engagement) / float64(pt.Posts))
		}
	}

	return &model.EngagementTrendSection{
		Daily:       daily,
		WeeklyTrend: weeklyTrend(daily),
	}
}

// weeklyTrend 比较最近 7 天与之前 7 天的日均互动量，返回百分比变化
func weeklyTrend(daily []*model.DailyTrendPoint) float64 {
	if len(daily) == 0 {
		return 0
	}
	curStart := len(daily) - trendWeekSpan
	if curStart < 0 {
		curStart = 0
	}
	prevStart := curStart - trendWeekSpan
	if prevStart < 0 {
		prevStart = 0
	}

	cur := avgDailyEngagement(daily[curStart:])
	prev := avgDailyEngagement(daily[prevStart:curStart])
	return round2(pctChange(prev, cur))
}

func avgDailyEngagement(points []*model.DailyTrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum int
	for _, pt := range points {
		sum += pt.Engagement
	}
	return float64(sum) / float64(len(points))
}

// windowDate 把时刻规整到当天零点，测试和日桶复用
func windowDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
