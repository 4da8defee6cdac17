package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ExportReportCSV 导出分析报告为 CSV 格式
func (s *Service) ExportReportCSV(ctx context.Context, username string, days int) ([]byte, error) {
	rep, err := s.buildReport(ctx, username, days)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", username).Int("days", days).Msg("ExportCSV processing")

	var buf bytes.Buffer

	// 写入 UTF-8 BOM，确保 Excel 正确识别编码
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)

	for _, table := range reportTables(rep) {
		if err := w.Write([]string{table.Title}); err != nil {
			return nil, fmt.Errorf("写入CSV标题失败: %w", err)
		}
		if err := w.Write(table.Header); err != nil {
			return nil, fmt.Errorf("写入CSV表头失败: %w", err)
		}
		for _, row := range table.Rows {
			if err := w.Write(row); err != nil {
				return nil, fmt.Errorf("写入CSV数据失败: %w", err)
			}
		}
		// 块之间空一行
		if err := w.Write([]string{}); err != nil {
			return nil, fmt.Errorf("写入CSV数据失败: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("CSV写入错误: %w", err)
	}

	return buf.Bytes(), nil
}
