package analytics

import (
	"fmt"
	"math"

	"github.com/afumu/gramtrace/internal/model"
)

// 发帖频率按固定 30 天基线归一化。历史行为如此，窗口天数
// 不是 30 时也保持这个基线，避免同一账号在不同窗口下得分漂移。
const consistencyBaselineDays = 30

// BuildPerformanceSection 计算综合表现评分。
// 窗口内没有帖子时返回全零结构而不是错误。
func BuildPerformanceSection(w *WindowData) *model.PerformanceReport {
	rep := &model.PerformanceReport{
		Insights:        []string{},
		Recommendations: []string{},
		QualityFactors:  make(map[string]float64),
	}

	totalPosts := len(w.Posts)
	if totalPosts == 0 {
		return rep
	}

	var totalFollowers int
	for _, p := range w.Profiles {
		totalFollowers += p.FollowerCount
	}

	avgEngagement := float64(w.TotalEngagement) / float64(totalPosts)
	var rate float64
	if totalFollowers > 0 {
		rate = avgEngagement / float64(totalFollowers) * 100
	}

	// 质量因子，各自缩放到 0-100
	factors := rep.QualityFactors
	factors["consistency"] = round2(math.Min(100, float64(totalPosts)/consistencyBaselineDays*20))

	// 互动稳定性需要至少 2 条帖子；不足时不计入，除数随之变化
	if totalPosts >= 2 {
		minEng, maxEng := w.Posts[0].Engagement(), w.Posts[0].Engagement()
		for _, p := range w.Posts[1:] {
			e := p.Engagement()
			if e < minEng {
				minEng = e
			}
			if e > maxEng {
				maxEng = e
			}
		}
		var v float64
		if avgEngagement > 0 {
			v = math.Max(0, 100-20*float64(maxEng-minEng)/avgEngagement)
		}
		factors["engagement_consistency"] = round2(v)
	}

	typesUsed := make(map[string]bool)
	var captioned int
	for _, p := range w.Posts {
		typesUsed[p.MediaType] = true
		if p.Caption != "" {
			captioned++
		}
	}
	factors["diversity"] = round2(math.Min(100, float64(len(typesUsed))*33.33))
	factors["caption_usage"] = round2(float64(captioned) / float64(totalPosts) * 100)

	var qualitySum float64
	for _, v := range factors {
		qualitySum += v
	}
	quality := qualitySum / float64(len(factors))

	var base float64
	switch {
	case rate > 3:
		base = math.Min(100, 80+2*rate)
	case rate > 1:
		base = math.Min(80, 50+15*rate)
	default:
		base = math.Min(50, 25*rate)
	}

	rep.EngagementRate = round2(rate)
	rep.ContentQuality = round2(quality)
	rep.PerformanceScore = math.Round((base + quality) / 2)

	buildInsights(rep, rate, len(typesUsed), totalPosts)
	return rep
}

// buildInsights 根据固定阈值生成文字结论与建议
func buildInsights(rep *model.PerformanceReport, rate float64, typesUsed, totalPosts int) {
	switch {
	case rate > 3:
		rep.Insights = append(rep.Insights, fmt.Sprintf("Excellent engagement rate (%.2f%%)", rate))
	case rate > 1:
		rep.Insights = append(rep.Insights, fmt.Sprintf("Good engagement rate (%.2f%%)", rate))
	case rate > 0.5:
		rep.Insights = append(rep.Insights, fmt.Sprintf("Average engagement rate (%.2f%%)", rate))
	default:
		rep.Insights = append(rep.Insights, fmt.Sprintf("Low engagement rate (%.2f%%)", rate))
		rep.Recommendations = append(rep.Recommendations,
			"Use relevant hashtags and post at peak hours to lift engagement")
	}

	if typesUsed >= 3 {
		rep.Insights = append(rep.Insights, "Great content diversity across post, reel and carousel formats")
	} else if typesUsed == 1 {
		rep.Recommendations = append(rep.Recommendations,
			"Diversify content formats - try reels and carousels")
	}

	if totalPosts < 10 {
		rep.Recommendations = append(rep.Recommendations,
			"Post more consistently to keep the audience engaged")
	}
}
