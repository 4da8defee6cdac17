package types

import "time"

// ProfileQuery 封装了查询账号档案的参数
type ProfileQuery struct {
	Username string // 为空表示不过滤
	Limit    int
	Offset   int
}

// PostQuery 封装了查询帖子的参数
type PostQuery struct {
	Username string
	Since    time.Time // 只返回发布时间不早于该时刻的帖子；时间缺失的帖子始终返回
	Limit    int
	Offset   int
}

// StoryQuery 封装了查询快拍的参数
type StoryQuery struct {
	Username string
	ActiveAt time.Time // 只返回在该时刻仍然活跃（过期时间严格在其后）的快拍
}
