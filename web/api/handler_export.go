package api

import (
	"fmt"
	"time"

	"github.com/afumu/gramtrace/web/transport"
	"github.com/gin-gonic/gin"
)

// ExportReport 处理导出分析报告的请求。
// format 支持 csv / xlsx / docx / pdf，默认 csv。
func (a *API) ExportReport(c *gin.Context) {
	var q transport.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		transport.BadRequest(c, "参数错误")
		return
	}
	if q.Days <= 0 {
		transport.BadRequest(c, "days 必须为正数")
		return
	}

	format := c.DefaultQuery("format", "csv")

	name := q.Username
	if name == "" {
		name = "all"
	}
	fileName := fmt.Sprintf("report_%s_%s", name, time.Now().Format("20060102_150405"))

	var (
		data        []byte
		err         error
		contentType string
	)
	ctx := c.Request.Context()

	switch format {
	case "csv":
		data, err = a.Export.ExportReportCSV(ctx, q.Username, q.Days)
		fileName += ".csv"
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		data, err = a.Export.ExportReportXLSX(ctx, q.Username, q.Days)
		fileName += ".xlsx"
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "docx":
		data, err = a.Export.ExportReportDOCX(ctx, q.Username, q.Days)
		fileName += ".docx"
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "pdf":
		data, err = a.Export.ExportReportPDF(ctx, q.Username, q.Days)
		fileName += ".pdf"
		contentType = "application/pdf"
	default:
		transport.BadRequest(c, "不支持的导出格式: "+format)
		return
	}

	if err != nil {
		transport.InternalServerError(c, fmt.Sprintf("导出失败: %v", err))
		return
	}

	transport.SendFile(c, fileName, contentType, data)
}
