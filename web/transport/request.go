package transport

// PaginationQuery 定义了列表请求的通用分页参数。
type PaginationQuery struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ReportQuery 定义了报告类请求的通用参数。
// Sections 为逗号分隔的分区名列表，为空表示全部分区。
type ReportQuery struct {
	Username string `form:"username"`
	Days     int    `form:"days,default=30"`
	Sections string `form:"sections"`
}
