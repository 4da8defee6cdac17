package api

import (
	"errors"
	"strings"

	"github.com/afumu/gramtrace/analytics"
	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetReport 生成分析报告。
// 支持 username（过滤账号）、days（统计窗口）、sections（逗号分隔的分区名）。
func (a *API) GetReport(c *gin.Context) {
	var q transport.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}
	if q.Days <= 0 {
		transport.BadRequest(c, "days 必须为正数")
		return
	}

	var sections []string
	if q.Sections != "" {
		for _, s := range strings.Split(q.Sections, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sections = append(sections, s)
			}
		}
	}

	rep, err := a.Engine.AssembleReport(c.Request.Context(), q.Username, q.Days, sections)
	if err != nil {
		if errors.Is(err, analytics.ErrUnknownSection) {
			transport.BadRequest(c, err.Error())
			return
		}
		log.Error().Err(err).Str("username", q.Username).Msg("生成报告失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	transport.SendSuccess(c, rep)
}
