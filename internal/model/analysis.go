package model

// HashtagStat 单个话题标签的聚合统计
type HashtagStat struct {
	Hashtag         string  `json:"hashtag"`          // 不带 # 前缀，统一小写
	UsageCount      int     `json:"usage_count"`      // 包含该标签的帖子数
	TotalEngagement int     `json:"total_engagement"` // 基础互动量累计
	AvgEngagement   float64 `json:"avg_engagement"`
}

// TrendingHashtag 话题标签的展示视图，带 # 前缀和可读的互动量
type TrendingHashtag struct {
	Hashtag         string `json:"hashtag"` // 带 # 前缀
	UsageCount      int    `json:"usage_count"`
	TotalEngagement string `json:"total_engagement"` // 如 "1.2K"
}

// MediaTypeStat 单种媒体类型的聚合统计
type MediaTypeStat struct {
	Type            string  `json:"type"`
	Count           int     `json:"count"`
	TotalEngagement int     `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
}

// HourStat 按小时(0-23)分桶的发布统计
type HourStat struct {
	Hour            int     `json:"hour"`
	Count           int     `json:"count"`
	TotalEngagement int     `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
}

// DayStat 按星期分桶的发布统计，Day 为英文星期名
type DayStat struct {
	Day             string  `json:"day"`
	Count           int     `json:"count"`
	TotalEngagement int     `json:"total_engagement"`
	AvgEngagement   float64 `json:"avg_engagement"`
}

// TimePeriodStat 一天中某个时段(morning/afternoon/evening/night)的统计
type TimePeriodStat struct {
	Posts         int     `json:"posts"`
	Percentage    float64 `json:"percentage"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// DailyBucket 每日时间序列的一个桶，用于图表展示
type DailyBucket struct {
	Date                 string  `json:"date"` // YYYY-MM-DD
	PostsCount           int     `json:"posts_count"`
	TotalEngagement      int     `json:"total_engagement"`
	TotalLikes           int     `json:"total_likes"`
	TotalComments        int     `json:"total_comments"`
	AvgEngagementPerPost float64 `json:"avg_engagement_per_post"`
}

// DailyTrendPoint 互动趋势序列中的一天
type DailyTrendPoint struct {
	Date          string  `json:"date"`
	Posts         int     `json:"posts"`
	Engagement    int     `json:"engagement"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// RankedPost 排行视图中的帖子条目
type RankedPost struct {
	PostID             string `json:"post_id"`
	Username           string `json:"username"`
	MediaType          string `json:"media_type"`
	Caption            string `json:"caption"`
	LikeCount          int    `json:"like_count"`
	CommentCount       int    `json:"comment_count"`
	ReshareCount       int    `json:"reshare_count"`
	Engagement         int    `json:"engagement"`
	ExtendedEngagement int    `json:"extended_engagement"`
	PostedAt           int64  `json:"posted_at"`
}

// StoryInfo 快拍列表条目
type StoryInfo struct {
	StoryID   string `json:"story_id"`
	Username  string `json:"username"`
	MediaType string `json:"media_type"`
	PostedAt  int64  `json:"posted_at"`
	ExpiresAt int64  `json:"expires_at"`
}
