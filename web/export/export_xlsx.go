package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExportReportXLSX 导出分析报告为 XLSX 格式，每个表格块一个 Sheet
func (s *Service) ExportReportXLSX(ctx context.Context, username string, days int) ([]byte, error) {
	rep, err := s.buildReport(ctx, username, days)
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", username).Int("days", days).Msg("ExportXLSX processing")

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	for i, table := range reportTables(rep) {
		sheetName := table.Title
		if len([]rune(sheetName)) > 31 {
			sheetName = string([]rune(sheetName)[:31])
		}
		if i == 0 {
			f.SetSheetName("Sheet1", sheetName)
		} else {
			if _, err := f.NewSheet(sheetName); err != nil {
				return nil, fmt.Errorf("创建Sheet失败: %w", err)
			}
		}

		for j, h := range table.Header {
			cell, _ := excelize.CoordinatesToCellName(j+1, 1)
			f.SetCellValue(sheetName, cell, h)
		}
		lastCol, _ := excelize.CoordinatesToCellName(len(table.Header), 1)
		f.SetCellStyle(sheetName, "A1", lastCol, headerStyle)

		colName, _ := excelize.ColumnNumberToName(len(table.Header))
		f.SetColWidth(sheetName, "A", colName, 22)

		for r, row := range table.Rows {
			for j, val := range row {
				cell, _ := excelize.CoordinatesToCellName(j+1, r+2)
				f.SetCellValue(sheetName, cell, val)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("写入XLSX失败: %w", err)
	}

	return buf.Bytes(), nil
}
