package api

import (
	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetDashboard 获取总览页数据
func (a *API) GetDashboard(c *gin.Context) {
	data, err := a.Engine.BuildDashboard(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("获取总览数据失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	transport.SendSuccess(c, data)
}
