package api

import (
	"github.com/afumu/gramtrace/pkg/wordcloud"
	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetWordCloud 统计窗口内帖子文案的高频词
func (a *API) GetWordCloud(c *gin.Context) {
	var q struct {
		Username string `form:"username"`
		Days     int    `form:"days,default=30"`
		Limit    int    `form:"limit,default=100"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}
	if q.Days <= 0 {
		transport.BadRequest(c, "days 必须为正数")
		return
	}

	w, err := a.Engine.LoadWindow(c.Request.Context(), q.Username, q.Days)
	if err != nil {
		log.Error().Err(err).Str("username", q.Username).Msg("加载窗口数据失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	captions := make([]string, 0, len(w.Posts))
	for _, p := range w.Posts {
		if p.Caption != "" {
			captions = append(captions, p.Caption)
		}
	}

	transport.SendSuccess(c, wordcloud.Analyze(captions, q.Limit))
}
