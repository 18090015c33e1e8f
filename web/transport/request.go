package transport

import "strings"

// PaginationQuery 定义了列表请求的通用分页参数。
type PaginationQuery struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CorpusRequest 是分析接口的请求体。
// user_words 与 stop_words 为按换行分隔的字符串。
type CorpusRequest struct {
	Content           string `json:"content"`
	UserWords         string `json:"user_words"`
	StopWords         string `json:"stop_words"`
	DeletePunctuation bool   `json:"delete_punctuation"`
}

var contentCleaner = strings.NewReplacer("\r\n", "", "\n", "", "\r", "", "\t", "")

// CleanContent 去掉正文中的换行与制表符。
func (r *CorpusRequest) CleanContent() string {
	return contentCleaner.Replace(r.Content)
}

// UserWordList 返回按行拆分后的用户词。
func (r *CorpusRequest) UserWordList() []string {
	return SplitLines(r.UserWords)
}

// StopWordList 返回按行拆分后的停用词。
func (r *CorpusRequest) StopWordList() []string {
	return SplitLines(r.StopWords)
}

// SplitLines 按行拆分，去掉首尾空白并丢弃空行。
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
