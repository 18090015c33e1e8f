package corpus

import "github.com/afumu/corpus/pkg/tokenizer"

// Result 是一次完整分析的输出。
type Result struct {
	CharLength        int        `json:"char_length"`
	WordCount         int        `json:"word_count"`
	TokenCount        int        `json:"token_count"`
	WordCounts        []Entry    `json:"word_counts"`
	PunctuationCounts []Entry    `json:"punctuation_counts"`
	WordCloud         []Entry    `json:"word_cloud"`
	SegCounts         []PosEntry `json:"seg_counts"`
}

// Analyze 对请求执行词频与词性两次统计。
func Analyze(tok tokenizer.Tokenizer, req Request, opts Options, topN int) (*Result, error) {
	s := NewSession(tok, req, opts)

	words, err := s.CountWords(topN)
	if err != nil {
		return nil, err
	}
	segs, err := s.CountSegment(topN)
	if err != nil {
		return nil, err
	}

	return &Result{
		CharLength:        s.CharLength(),
		WordCount:         s.WordCount(),
		TokenCount:        s.TokenCount(),
		WordCounts:        words.Words,
		PunctuationCounts: words.Punctuation,
		WordCloud:         words.Cloud,
		SegCounts:         segs,
	}, nil
}
