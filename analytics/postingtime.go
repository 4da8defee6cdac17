package analytics

import (
	"fmt"
	"sort"

	"github.com/afumu/gramtrace/internal/model"
)

const bestSlotLimit = 3

// defaultFavouredTime 没有任何有效发布时间时的兜底文案
const defaultFavouredTime = "Morning (09:00 - 11:00)"

// weekdayOrder 星期分桶的固定输出顺序
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// periodOfHour 把小时映射到时段：morning [6,12)、afternoon [12,18)、
// evening [18,24)、night [0,6)
func periodOfHour(h int) string {
	switch {
	case h >= 6 && h < 12:
		return "morning"
	case h >= 12 && h < 18:
		return "afternoon"
	case h >= 18:
		return "evening"
	default:
		return "night"
	}
}

var periodLabels = map[string]string{
	"morning":   "Morning",
	"afternoon": "Afternoon",
	"evening":   "Evening",
	"night":     "Night",
}

// BuildPostingTimeSection 按发布时间分桶。
// 发布时间缺失的帖子不参与本分区。
func BuildPostingTimeSection(w *WindowData) *model.PostingTimeSection {
	hours := make([]*model.HourStat, 24)
	for i := range hours {
		hours[i] = &model.HourStat{Hour: i}
	}
	dayStats := make(map[string]*model.DayStat, len(weekdayOrder))
	for _, d := range weekdayOrder {
		dayStats[d] = &model.DayStat{Day: d}
	}
	periods := map[string]*model.TimePeriodStat{
		"morning":   {},
		"afternoon": {},
		"evening":   {},
		"night":     {},
	}
	periodEngagement := make(map[string]int)

	var timed int
	for _, p := range w.Posts {
		if !p.HasTimestamp() {
			continue
		}
		timed++
		h := p.PostedAt.Hour()
		eng := p.Engagement()

		hours[h].Count++
		hours[h].TotalEngagement += eng

		d := dayStats[p.PostedAt.Weekday().String()]
		d.Count++
		d.TotalEngagement += eng

		period := periodOfHour(h)
		periods[period].Posts++
		periodEngagement[period] += eng
	}

	for _, hs := range hours {
		if hs.Count > 0 {
			hs.AvgEngagement = round2(float64(hs.TotalEngagement) / float64(hs.Count))
		}
	}
	weekdays := make([]*model.DayStat, 0, len(weekdayOrder))
	for _, d := range weekdayOrder {
		ds := dayStats[d]
		if ds.Count > 0 {
			ds.AvgEngagement = round2(float64(ds.TotalEngagement) / float64(ds.Count))
		}
		weekdays = append(weekdays, ds)
	}
	for name, ps := range periods {
		if ps.Posts > 0 {
			ps.AvgEngagement = round2(float64(periodEngagement[name]) / float64(ps.Posts))
		}
		if timed > 0 {
			ps.Percentage = round2(float64(ps.Posts) / float64(timed) * 100)
		}
	}

	return &model.PostingTimeSection{
		Hourly:              hours,
		Weekdays:            weekdays,
		BestHours:           bestHours(hours),
		BestDays:            bestDays(weekdays),
		TimePeriodBreakdown: periods,
		FavouredPostingTime: favouredPostingTime(hours),
	}
}

// bestHours 取平均互动量最高的 3 个小时桶（只看有帖子的）
func bestHours(hours []*model.HourStat) []*model.HourStat {
	active := make([]*model.HourStat, 0, len(hours))
	for _, h := range hours {
		if h.Count > 0 {
			active = append(active, h)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].AvgEngagement > active[j].AvgEngagement
	})
	if len(active) > bestSlotLimit {
		active = active[:bestSlotLimit]
	}
	return active
}

func bestDays(days []*model.DayStat) []*model.DayStat {
	active := make([]*model.DayStat, 0, len(days))
	for _, d := range days {
		if d.Count > 0 {
			active = append(active, d)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].AvgEngagement > active[j].AvgEngagement
	})
	if len(active) > bestSlotLimit {
		active = active[:bestSlotLimit]
	}
	return active
}

// favouredPostingTime 把最佳小时映射回时段标签，展示一个 2 小时窗口。
// 并列时取更早的小时。
func favouredPostingTime(hours []*model.HourStat) string {
	var best *model.HourStat
	for _, h := range hours {
		if h.Count == 0 {
			continue
		}
		if best == nil || h.AvgEngagement > best.AvgEngagement {
			best = h
		}
	}
	if best == nil {
		return defaultFavouredTime
	}
	label := periodLabels[periodOfHour(best.Hour)]
	return fmt.Sprintf("%s (%02d:00 - %02d:00)", label, best.Hour, (best.Hour+2)%24)
}
