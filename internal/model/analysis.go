package model

import "github.com/afumu/corpus/pkg/corpus"

// WordStat 是一条词频记录，字段名沿用前端使用的中文键。
type WordStat struct {
	Name  string `json:"词名称"`
	Count int    `json:"词频分布"`
}

// PunctuationStat 是一条标点统计记录。
type PunctuationStat struct {
	Name  string `json:"标点名称"`
	Count int    `json:"标点分布"`
}

// SegStat 是一条词性分布记录，未知词性的 Label 序列化为 null。
type SegStat struct {
	Label *string `json:"词性"`
	Count int     `json:"词性分布"`
	Tag   string  `json:"tag"`
}

// CorpusAnalysis 是 /corpus 接口返回的数据。
type CorpusAnalysis struct {
	WordCount        []WordStat        `json:"word_count"`
	PunctuationCount []PunctuationStat `json:"punctuation_count"`
	SegCount         []SegStat         `json:"seg_count"`
	WordCloud        []WordStat        `json:"word_cloud"`
	CharLength       int               `json:"char_length"`
	TotalWords       int               `json:"total_words"`
	TotalTokens      int               `json:"total_tokens"`
}

// NewCorpusAnalysis 把分析结果整理成接口记录。
func NewCorpusAnalysis(r *corpus.Result) *CorpusAnalysis {
	a := &CorpusAnalysis{
		WordCount:        wordStats(r.WordCounts),
		PunctuationCount: make([]PunctuationStat, 0, len(r.PunctuationCounts)),
		SegCount:         make([]SegStat, 0, len(r.SegCounts)),
		WordCloud:        wordStats(r.WordCloud),
		CharLength:       r.CharLength,
		TotalWords:       r.WordCount,
		TotalTokens:      r.TokenCount,
	}
	for _, e := range r.PunctuationCounts {
		a.PunctuationCount = append(a.PunctuationCount, PunctuationStat{Name: e.Label, Count: e.Count})
	}
	for _, e := range r.SegCounts {
		a.SegCount = append(a.SegCount, SegStat{Label: e.Label, Count: e.Count, Tag: e.Tag})
	}
	return a
}

func wordStats(entries []corpus.Entry) []WordStat {
	out := make([]WordStat, 0, len(entries))
	for _, e := range entries {
		out = append(out, WordStat{Name: e.Label, Count: e.Count})
	}
	return out
}
