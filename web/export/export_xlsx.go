package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/afumu/corpus/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX 导出为 XLSX，每张统计表一个 Sheet。
func (s *Service) ExportXLSX(a *model.CorpusAnalysis) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	for i, t := range tables(a) {
		if i == 0 {
			f.SetSheetName("Sheet1", t.Title)
		} else if _, err := f.NewSheet(t.Title); err != nil {
			return nil, fmt.Errorf("创建Sheet失败: %w", err)
		}

		f.SetCellValue(t.Title, "A1", t.Header[0])
		f.SetCellValue(t.Title, "B1", t.Header[1])
		f.SetCellStyle(t.Title, "A1", "B1", headerStyle)
		f.SetColWidth(t.Title, "A", "A", 20)
		f.SetColWidth(t.Title, "B", "B", 12)

		for j, r := range t.Rows {
			row := j + 2
			f.SetCellValue(t.Title, "A"+strconv.Itoa(row), r[0])
			n, _ := strconv.Atoi(r[1])
			f.SetCellValue(t.Title, "B"+strconv.Itoa(row), n)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("写入XLSX失败: %w", err)
	}

	log.Debug().Int("bytes", buf.Len()).Msg("ExportXLSX done")
	return buf.Bytes(), nil
}
