package api

import (
	"time"

	"github.com/afumu/gramtrace/analytics"
	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetDailyChart 获取固定长度的每日活动序列，用于前端图表
func (a *API) GetDailyChart(c *gin.Context) {
	var q struct {
		Username string `form:"username"`
		Days     int    `form:"days,default=30"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}
	if q.Days <= 0 || q.Days > 365 {
		transport.BadRequest(c, "days 必须在 1-365 之间")
		return
	}

	buckets, err := a.Engine.BuildDailyChart(c.Request.Context(), q.Username, q.Days)
	if err != nil {
		log.Error().Err(err).Str("username", q.Username).Msg("获取每日序列失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	transport.SendSuccess(c, buckets)
}

// ComparePeriods 比较各账号当前周期与上一周期的表现
func (a *API) ComparePeriods(c *gin.Context) {
	var q struct {
		Username string `form:"username"`
		Period   string `form:"period,default=week"`
		Start    string `form:"start"` // 仅 period=custom 时使用，格式 2006-01-02
		End      string `form:"end"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}

	var start, end time.Time
	if q.Period == analytics.PeriodCustom {
		var err error
		if start, err = time.Parse("2006-01-02", q.Start); err != nil {
			transport.BadRequest(c, "start 格式错误, 应为 YYYY-MM-DD")
			return
		}
		if end, err = time.Parse("2006-01-02", q.End); err != nil {
			transport.BadRequest(c, "end 格式错误, 应为 YYYY-MM-DD")
			return
		}
	}

	result, err := a.Engine.ComparePeriods(c.Request.Context(), q.Username, q.Period, start, end)
	if err != nil {
		transport.BadRequest(c, err.Error())
		return
	}

	transport.SendSuccess(c, result)
}
