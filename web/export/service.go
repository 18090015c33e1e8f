package export

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/afumu/corpus/internal/model"
)

// ErrUnsupportedFormat 表示不支持的导出格式。
var ErrUnsupportedFormat = errors.New("不支持的导出格式")

// File 是导出结果。
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Service 把分析结果导出为文件。
type Service struct{}

// Export 按 format 导出分析结果，format 为空时导出 xlsx。
func (s *Service) Export(a *model.CorpusAnalysis, format, baseName string) (*File, error) {
	if baseName == "" {
		baseName = "corpus"
	}

	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case "csv":
		data, err = s.ExportCSV(a)
		contentType = "text/csv; charset=utf-8"
	case "", "xlsx":
		format = "xlsx"
		data, err = s.ExportXLSX(a)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case "docx":
		data, err = s.ExportDOCX(a)
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        baseName + "." + format,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// table 是导出时的一张统计表。
type table struct {
	Title  string
	Header [2]string
	Rows   [][2]string
}

// tables 把分析结果展开为导出用的表格，词性未知时名称留空。
func tables(a *model.CorpusAnalysis) []table {
	words := table{Title: "词频", Header: [2]string{"词名称", "词频分布"}}
	for _, w := range a.WordCount {
		words.Rows = append(words.Rows, [2]string{w.Name, strconv.Itoa(w.Count)})
	}

	punct := table{Title: "标点", Header: [2]string{"标点名称", "标点分布"}}
	for _, p := range a.PunctuationCount {
		punct.Rows = append(punct.Rows, [2]string{p.Name, strconv.Itoa(p.Count)})
	}

	segs := table{Title: "词性", Header: [2]string{"词性", "词性分布"}}
	for _, s := range a.SegCount {
		label := ""
		if s.Label != nil {
			label = *s.Label
		}
		segs.Rows = append(segs.Rows, [2]string{label, strconv.Itoa(s.Count)})
	}

	cloud := table{Title: "词云", Header: [2]string{"词名称", "词频分布"}}
	for _, w := range a.WordCloud {
		cloud.Rows = append(cloud.Rows, [2]string{w.Name, strconv.Itoa(w.Count)})
	}

	return []table{words, punct, segs, cloud}
}
