package api

import (
	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// GetSystemStatus 返回应用程序的当前状态：数据文件信息与缓存配置。
func (a *API) GetSystemStatus(c *gin.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stats, err := a.Store.GetStoreStats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("获取数据文件状态失败")
		transport.InternalServerError(c, err.Error())
		return
	}

	status := gin.H{
		"store_initialized": true,
		"store":             stats,
		"config": gin.H{
			"data_dir":          a.Conf.DataDir,
			"cache_enabled":     a.Conf.CacheEnabled,
			"cache_ttl_minutes": a.Conf.CacheTTLMinutes,
		},
	}
	transport.SendSuccess(c, status)
}

// ReloadStore 手动触发存储重载，采集端替换数据文件后可调用
func (a *API) ReloadStore(c *gin.Context) {
	if err := a.Store.Reload(); err != nil {
		log.Error().Err(err).Msg("重载存储失败")
		transport.InternalServerError(c, err.Error())
		return
	}
	a.Cache.Invalidate()

	transport.SendSuccess(c, gin.H{"status": "reloaded"})
}

// UpdateConfig 更新系统配置并持久化
func (a *API) UpdateConfig(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	allowed := map[string]bool{
		"CACHE_ENABLED":     true,
		"CACHE_TTL_MINUTES": true,
	}
	changed := false
	for k, v := range req {
		if !allowed[k] {
			continue
		}
		viper.Set(k, v)
		changed = true
	}
	if !changed {
		transport.BadRequest(c, "没有可更新的配置项")
		return
	}

	if err := viper.WriteConfig(); err != nil {
		transport.InternalServerError(c, "保存配置失败: "+err.Error())
		return
	}

	transport.SendSuccess(c, gin.H{"status": "updated"})
}
