package api

import (
	"github.com/afumu/gramtrace/store/types"
	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetProfiles 获取账号档案列表，按粉丝数降序
func (a *API) GetProfiles(c *gin.Context) {
	var page transport.PaginationQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}

	profiles, err := a.Store.GetProfiles(c.Request.Context(), types.ProfileQuery{
		Username: c.Query("username"),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		log.Error().Err(err).Msg("获取账号档案失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	transport.SendSuccess(c, profiles)
}

// GetProfileByName 获取单个账号档案
func (a *API) GetProfileByName(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		transport.BadRequest(c, "username 参数是必需的")
		return
	}

	profiles, err := a.Store.GetProfiles(c.Request.Context(), types.ProfileQuery{Username: username})
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("获取账号档案失败")
		transport.InternalServerError(c, err.Error())
		return
	}
	if len(profiles) == 0 {
		transport.NotFound(c, "账号不存在: "+username)
		return
	}

	transport.SendSuccess(c, profiles[0])
}
