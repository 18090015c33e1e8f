package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/afumu/corpus/internal/model"
	"github.com/rs/zerolog/log"
)

// ExportCSV 导出为 CSV，各统计表之间以空行分隔。
func (s *Service) ExportCSV(a *model.CorpusAnalysis) ([]byte, error) {
	var buf bytes.Buffer

	// 写入 UTF-8 BOM，确保 Excel 正确识别编码
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"字符数", fmt.Sprint(a.CharLength), "词数", fmt.Sprint(a.TotalWords)}); err != nil {
		return nil, fmt.Errorf("写入CSV失败: %w", err)
	}

	for _, t := range tables(a) {
		rows := [][]string{{}, {t.Title}, t.Header[:]}
		for _, r := range t.Rows {
			rows = append(rows, []string{r[0], r[1]})
		}
		if err := w.WriteAll(rows); err != nil {
			return nil, fmt.Errorf("写入CSV数据失败: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("CSV写入错误: %w", err)
	}

	log.Debug().Int("bytes", buf.Len()).Msg("ExportCSV done")
	return buf.Bytes(), nil
}
