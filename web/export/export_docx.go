package export

import (
	"bytes"
	"fmt"

	"github.com/afumu/corpus/internal/model"
	"github.com/gomutex/godocx"
	"github.com/rs/zerolog/log"
)

// ExportDOCX 导出为 DOCX 报告。
func (s *Service) ExportDOCX(a *model.CorpusAnalysis) ([]byte, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return nil, fmt.Errorf("创建DOCX文档失败: %w", err)
	}
	defer doc.Close()

	doc.AddHeading("语料分析报告", 1)
	doc.AddParagraph(fmt.Sprintf("字符数: %d    词数: %d    分词总数: %d", a.CharLength, a.TotalWords, a.TotalTokens))

	for _, t := range tables(a) {
		doc.AddEmptyParagraph()
		doc.AddHeading(t.Title, 2)
		if len(t.Rows) == 0 {
			doc.AddParagraph("无")
			continue
		}
		for _, r := range t.Rows {
			name := r[0]
			if name == "" {
				name = "（未知）"
			}
			doc.AddParagraph(fmt.Sprintf("%s    %s", name, r[1]))
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("写入DOCX失败: %w", err)
	}

	log.Debug().Int("bytes", buf.Len()).Msg("ExportDOCX done")
	return buf.Bytes(), nil
}
