package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRoutes 初始化所有应用程序路由。
func (s *Service) setupRoutes() {
	// API v1 路由组, 使用在 service 中初始化的处理器
	v1 := s.router.Group("/api/v1")
	{
		// 系统路由
		system := v1.Group("/system")
		{
			system.GET("/status", s.api.GetSystemStatus)
			system.POST("/reload", s.api.ReloadStore)
			system.POST("/config", s.api.UpdateConfig)

			password := system.Group("/password")
			{
				password.GET("/status", s.api.GetPasswordStatus)
				password.POST("/set", s.api.SetPassword)
				password.POST("/verify", s.api.VerifyPassword)
				password.POST("/disable", s.api.DisablePassword)
			}
		}

		// 报告路由
		v1.GET("/report", s.api.GetReport)

		// 总览路由
		v1.GET("/dashboard", s.api.GetDashboard)

		// 账号路由
		v1.GET("/profiles", s.api.GetProfiles)
		v1.GET("/profiles/:username", s.api.GetProfileByName)

		// 导出路由
		v1.GET("/export/report", s.api.ExportReport)

		// 分析路由
		analysisGroup := v1.Group("/analysis")
		{
			analysisGroup.GET("/daily_chart", s.api.GetDailyChart)
			analysisGroup.GET("/compare", s.api.ComparePeriods)
			analysisGroup.GET("/wordcloud", s.api.GetWordCloud)
		}
	}

	// 健康检查
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
