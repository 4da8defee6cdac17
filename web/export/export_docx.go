package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/rs/zerolog/log"
)

// ExportReportDOCX 导出分析报告为 DOCX 格式
func (s *Service) ExportReportDOCX(ctx context.Context, username string, days int) ([]byte, error) {
	rep, err := s.buildReport(ctx, username, days)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", username).Int("days", days).Msg("ExportDOCX processing")

	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("创建DOCX文档失败: %w", err)
	}
	defer doc.Close()

	title := "账号活动分析报告"
	if username != "" {
		title = username + " 的活动分析报告"
	}
	doc.AddHeading(title, 1)
	doc.AddEmptyParagraph()

	for _, table := range reportTables(rep) {
		doc.AddHeading(table.Title, 2)
		doc.AddParagraph(strings.Join(table.Header, "  |  "))
		for _, row := range table.Rows {
			doc.AddParagraph(strings.Join(row, "  |  "))
		}
		doc.AddEmptyParagraph()
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("写入DOCX失败: %w", err)
	}

	return buf.Bytes(), nil
}
