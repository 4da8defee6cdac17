package model

import "time"

// 规范化后的媒体类型。采集端上报的别名（carousel_album、video、image）
// 在入库读取时统一转换为这三种。
const (
	MediaTypePost     = "post"
	MediaTypeReel     = "reel"
	MediaTypeCarousel = "carousel"
)

// CanonicalMediaTypes 按固定顺序列出三种规范媒体类型，
// 聚合时即使数量为 0 也要初始化这三个桶。
var CanonicalMediaTypes = []string{MediaTypePost, MediaTypeReel, MediaTypeCarousel}

// NormalizeMediaType 将采集端的媒体类型别名转换为规范类型。
func NormalizeMediaType(t string) string {
	switch t {
	case MediaTypePost, MediaTypeReel, MediaTypeCarousel:
		return t
	case "carousel_album":
		return MediaTypeCarousel
	case "video":
		return MediaTypeReel
	case "image":
		return MediaTypePost
	default:
		return MediaTypePost
	}
}

// Profile 账号档案快照。由采集管道写入，分析引擎只读。
type Profile struct {
	Username          string  `json:"username"`
	FullName          string  `json:"full_name,omitempty"`
	FollowerCount     int     `json:"follower_count"`
	FollowingCount    int     `json:"following_count"`
	MediaCount        int     `json:"media_count"`
	IsVerified        bool    `json:"is_verified"`
	IsPrivate         bool    `json:"is_private"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	ScrapedAt         int64   `json:"scraped_at,omitempty"`
}

// Post 一条帖子记录。可选计数（转发、收藏）在入库读取时
// 从原始抓取载荷中解析一次，缺失时默认为 0，之后不再做动态兜底。
type Post struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	MediaType       string    `json:"media_type"`
	Caption         string    `json:"caption"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	ReshareCount    int       `json:"reshare_count"`
	SaveCount       int       `json:"save_count"`
	PlayCount       int       `json:"play_count"`
	IsCollaboration bool      `json:"is_collaboration"`
	PostedAt        time.Time `json:"posted_at"`
}

// Engagement 基础互动量 = 点赞 + 评论。
func (p *Post) Engagement() int {
	return p.LikeCount + p.CommentCount
}

// ExtendedEngagement 扩展互动量 = 基础互动量 + 转发。
func (p *Post) ExtendedEngagement() int {
	return p.Engagement() + p.ReshareCount
}

// HasTimestamp 判断发布时间是否有效。时间缺失的帖子仍计入总量，
// 但不参与任何按时间分桶的统计。
func (p *Post) HasTimestamp() bool {
	return !p.PostedAt.IsZero()
}

// Story 一条快拍记录。过期时间严格晚于评估时刻的快拍视为活跃。
type Story struct {
	StoryID   string    `json:"story_id"`
	Username  string    `json:"username"`
	MediaType string    `json:"media_type"`
	PostedAt  time.Time `json:"posted_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Active 判断快拍在 asOf 时刻是否仍然活跃。
func (s *Story) Active(asOf time.Time) bool {
	return s.ExpiresAt.After(asOf)
}
