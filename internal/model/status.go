package model

// StoreStats 数据文件状态，用于系统状态接口
type StoreStats struct {
	DBPath           string  `json:"db_path"`
	DBSizeMB         float64 `json:"db_size_mb"`
	ProfileCount     int     `json:"profile_count"`
	PostCount        int     `json:"post_count"`
	StoryCount       int     `json:"story_count"`
	EarliestPostTime int64   `json:"earliest_post_time"`
	LatestPostTime   int64   `json:"latest_post_time"`
}
