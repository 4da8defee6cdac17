package model

import "time"

// 报告分区的稳定键名。调用方通过这些名字选择要计算的分区。
const (
	SectionProfiles         = "profiles"
	SectionPosts            = "posts"
	SectionHashtags         = "hashtags"
	SectionMediaTypes       = "media_types"
	SectionPostingTimes     = "posting_times"
	SectionEngagementTrends = "engagement_trends"
	SectionPerformance      = "performance"
	SectionStories          = "stories"
)

// AllSections 按固定顺序列出全部分区键
var AllSections = []string{
	SectionProfiles,
	SectionPosts,
	SectionHashtags,
	SectionMediaTypes,
	SectionPostingTimes,
	SectionEngagementTrends,
	SectionPerformance,
	SectionStories,
}

// ReportMetadata 每份报告都携带的元信息
type ReportMetadata struct {
	ReportID        string    `json:"report_id"`
	GeneratedAt     time.Time `json:"generated_at"`
	Username        string    `json:"username,omitempty"` // 为空表示未过滤
	Days            int       `json:"days"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	TotalProfiles   int       `json:"total_profiles"`
	TotalPosts      int       `json:"total_posts"`
	TotalEngagement int       `json:"total_engagement"`
	Sections        []string  `json:"sections"`
}

// Report 一份完整的分析报告。未请求的分区为 nil，序列化时省略。
type Report struct {
	Metadata         ReportMetadata          `json:"metadata"`
	Profiles         *ProfileSection         `json:"profiles,omitempty"`
	Posts            *PostSection            `json:"posts,omitempty"`
	Hashtags         *HashtagSection         `json:"hashtags,omitempty"`
	MediaTypes       *MediaTypeSection       `json:"media_types,omitempty"`
	PostingTimes     *PostingTimeSection     `json:"posting_times,omitempty"`
	EngagementTrends *EngagementTrendSection `json:"engagement_trends,omitempty"`
	Performance      *PerformanceReport      `json:"performance,omitempty"`
	Stories          *StorySection           `json:"stories,omitempty"`
}

// ProfileDetail 单个账号的档案条目
type ProfileDetail struct {
	Username          string  `json:"username"`
	FullName          string  `json:"full_name,omitempty"`
	FollowerCount     int     `json:"follower_count"`
	FollowingCount    int     `json:"following_count"`
	MediaCount        int     `json:"media_count"`
	IsVerified        bool    `json:"is_verified"`
	IsPrivate         bool    `json:"is_private"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
}

// ProfileSection 账号档案分区
type ProfileSection struct {
	Profiles       map[string]*ProfileDetail `json:"profiles"`
	TotalProfiles  int                       `json:"total_profiles"`
	TotalFollowers int                       `json:"total_followers"`
	TotalFollowing int                       `json:"total_following"`
	VerifiedCount  int                       `json:"verified_count"`
	PrivateCount   int                       `json:"private_count"`
	AvgFollowers   float64                   `json:"avg_followers"`
	AvgFollowing   float64                   `json:"avg_following"`
}

// PostSection 帖子与互动分区
type PostSection struct {
	TotalPosts           int            `json:"total_posts"`
	TotalLikes           int            `json:"total_likes"`
	TotalComments        int            `json:"total_comments"`
	TotalReshares        int            `json:"total_reshares"`
	TotalEngagement      int            `json:"total_engagement"`
	AvgLikes             float64        `json:"avg_likes"`
	AvgComments          float64        `json:"avg_comments"`
	AvgEngagementPerPost float64        `json:"avg_engagement_per_post"`
	EngagementPerContent float64        `json:"engagement_per_content"`
	CollaborationCount   int            `json:"collaboration_count"`
	AverageReelView      float64        `json:"average_reel_view"`
	MediaTypeCounts      map[string]int `json:"media_type_counts"`
	MediaTypeEngagement  map[string]int `json:"media_type_engagement"`
	TopPosts             []*RankedPost  `json:"top_posts"`
	BottomPosts          []*RankedPost  `json:"bottom_posts"`
	TopPerformers        []*RankedPost  `json:"top_performers"`
}

// HashtagSection 话题标签分区。三个视图来自同一份底层统计。
type HashtagSection struct {
	UniqueHashtags    int                `json:"unique_hashtags"`
	ByTotalEngagement []*HashtagStat     `json:"by_total_engagement"`
	ByAvgEngagement   []*HashtagStat     `json:"by_avg_engagement"`
	Trending          []*TrendingHashtag `json:"trending"`
	// TopHashtags 是兼容旧接口的视图，内容为 ByTotalEngagement 的前 10 条
	TopHashtags []*HashtagStat `json:"top_hashtags"`
}

// MediaTypeSection 媒体类型分区
type MediaTypeSection struct {
	Types              map[string]*MediaTypeStat `json:"types"`
	BestPerformingType *string                   `json:"best_performing_type"`
	// MediaTypeAnalysis 是兼容旧接口的视图，与 Types 指向同一份统计
	MediaTypeAnalysis map[string]*MediaTypeStat `json:"media_type_analysis"`
}

// PostingTimeSection 发布时间分区
type PostingTimeSection struct {
	Hourly              []*HourStat                `json:"hourly"`
	Weekdays            []*DayStat                 `json:"weekdays"`
	BestHours           []*HourStat                `json:"best_hours"`
	BestDays            []*DayStat                 `json:"best_days"`
	TimePeriodBreakdown map[string]*TimePeriodStat `json:"time_period_breakdown"`
	FavouredPostingTime string                     `json:"favoured_posting_time"`
}

// EngagementTrendSection 互动趋势分区
type EngagementTrendSection struct {
	Daily       []*DailyTrendPoint `json:"daily"`
	WeeklyTrend float64            `json:"weekly_trend"`
}

// PerformanceReport 综合表现分区
type PerformanceReport struct {
	Insights         []string           `json:"insights"`
	Recommendations  []string           `json:"recommendations"`
	PerformanceScore float64            `json:"performance_score"`
	EngagementRate   float64            `json:"engagement_rate"`
	ContentQuality   float64            `json:"content_quality"`
	QualityFactors   map[string]float64 `json:"quality_factors"`
}

// StorySection 快拍分区
type StorySection struct {
	ActiveCount int          `json:"active_count"`
	Stories     []*StoryInfo `json:"stories"`
}

// PeriodStats 一个比较周期内的聚合
type PeriodStats struct {
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Posts           int       `json:"posts"`
	TotalEngagement int       `json:"total_engagement"`
	TotalLikes      int       `json:"total_likes"`
	TotalComments   int       `json:"total_comments"`
	AvgEngagement   float64   `json:"avg_engagement"`
}

// PeriodComparison 单个账号的周期对比结果。
// 周期锚定在该账号最近一条帖子的时间，而不是当前时刻。
type PeriodComparison struct {
	Username       string             `json:"username"`
	Period         string             `json:"period"` // week / month / custom
	CurrentPeriod  PeriodStats        `json:"current_period"`
	PreviousPeriod PeriodStats        `json:"previous_period"`
	Changes        map[string]float64 `json:"changes"` // 指标名 -> 百分比变化
}

// DashboardData 总览数据
type DashboardData struct {
	Overview DashboardOverview `json:"overview"`
}

// DashboardOverview 总览统计
type DashboardOverview struct {
	TotalProfiles   int               `json:"total_profiles"`
	TotalPosts      int               `json:"total_posts"`
	TotalEngagement int               `json:"total_engagement"`
	TotalLikes      int               `json:"total_likes"`
	TotalComments   int               `json:"total_comments"`
	ActiveStories   int               `json:"active_stories"`
	TopProfiles     []*ProfileDetail  `json:"top_profiles"`
	Timeline        DashboardTimeline `json:"timeline"`
}

// DashboardTimeline 数据时间范围
type DashboardTimeline struct {
	EarliestPostTime int64 `json:"earliest_post_time"`
	LatestPostTime   int64 `json:"latest_post_time"`
	DurationDays     int   `json:"duration_days"`
}
