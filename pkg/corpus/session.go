package corpus

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/afumu/corpus/pkg/tokenizer"
)

// ErrTokenizerUnavailable 表示会话没有可用的分词引擎。
var ErrTokenizerUnavailable = errors.New("corpus: tokenizer unavailable")

// CloudTopN 是词云表的默认容量。
const CloudTopN = 1000

// DefaultStopWords 在请求未提供停用词时使用。
var DefaultStopWords = []string{"的", "地", "得", "你", "我", "他", "了"}

// Request 是一次分析请求的输入。
type Request struct {
	Text      string
	UserWords []string
	StopWords []string
	// DeletePunctuation 默认只作为审计信息记录，
	// 只有 Options.HonorDeletePunctuation 打开时才影响统计。
	DeletePunctuation bool
}

// Options 控制会话的统计行为。
type Options struct {
	HonorDeletePunctuation bool
	// CloudTopN 为 0 时使用 CloudTopN 常量。
	CloudTopN int
	// Punctuation 为 nil 时使用默认标点集合。
	Punctuation *PunctuationSet
}

// PosEntry 是一条词性分布记录。未知词性的 Label 为 nil。
type PosEntry struct {
	Tag   string  `json:"tag"`
	Label *string `json:"label"`
	Count int     `json:"count"`
}

// WordResult 是 CountWords 的三张表。
type WordResult struct {
	Words       []Entry
	Punctuation []Entry
	Cloud       []Entry
}

// Session 持有一次请求的文本与配置，生命周期等同于一次请求。
type Session struct {
	tok        tokenizer.Tokenizer
	req        Request
	opts       Options
	stopWords  []string
	charLen    int
	wordCount  int
	tokenCount int
}

// NewSession 创建分析会话，字符数在此时计算。
func NewSession(tok tokenizer.Tokenizer, req Request, opts Options) *Session {
	req.UserWords = append([]string(nil), req.UserWords...)
	req.StopWords = append([]string(nil), req.StopWords...)

	stopWords := req.StopWords
	if len(stopWords) == 0 {
		stopWords = DefaultStopWords
	}
	if opts.CloudTopN <= 0 {
		opts.CloudTopN = CloudTopN
	}
	if opts.Punctuation == nil {
		opts.Punctuation = Punctuation
	}

	return &Session{
		tok:       tok,
		req:       req,
		opts:      opts,
		stopWords: stopWords,
		charLen:   utf8.RuneCountInString(req.Text),
	}
}

// CharLength 返回文本的字符数（非字节数）。
func (s *Session) CharLength() int { return s.charLen }

// WordCount 返回最近一次 CountWords 未过滤时的不同词数。
func (s *Session) WordCount() int { return s.wordCount }

// TokenCount 返回最近一次 CountWords 分出的词总数。
func (s *Session) TokenCount() int { return s.tokenCount }

// StopWords 返回实际生效的停用词。
func (s *Session) StopWords() []string { return s.stopWords }

// CountSegment 统计词性分布，返回出现最多的 topN 种词性。
func (s *Session) CountSegment(topN int) ([]PosEntry, error) {
	if s.tok == nil {
		return nil, ErrTokenizerUnavailable
	}
	if s.req.Text == "" {
		return []PosEntry{}, nil
	}

	tagged, err := s.tok.Tag(s.req.Text, s.req.UserWords)
	if err != nil {
		return nil, fmt.Errorf("词性标注失败: %w", err)
	}

	tags := NewFrequencyMap()
	for _, t := range tagged {
		tags.Add(t.Tag, 1)
	}

	ranked := Rank(tags, topN)
	out := make([]PosEntry, 0, len(ranked))
	for _, e := range ranked {
		entry := PosEntry{Tag: e.Label, Count: e.Count}
		if label, ok := PosLabel(e.Label); ok {
			entry.Label = &label
		}
		out = append(out, entry)
	}
	return out, nil
}

// CountWords 统计词频。返回过滤后的前 topN 个词、前 topN 个标点，
// 以及用于词云的更大切片，两张词表来自同一份过滤结果。
func (s *Session) CountWords(topN int) (*WordResult, error) {
	if s.tok == nil {
		return nil, ErrTokenizerUnavailable
	}

	var words []string
	if s.req.Text != "" {
		var err error
		words, err = s.tok.Cut(s.req.Text, s.req.UserWords)
		if err != nil {
			return nil, fmt.Errorf("分词失败: %w", err)
		}
	}

	freq := Count(words)
	s.wordCount = freq.Len()
	s.tokenCount = len(words)

	punct := s.opts.Punctuation
	if s.opts.HonorDeletePunctuation && !s.req.DeletePunctuation {
		punct = nil
	}
	filtered, punctuation := Filter(freq, s.stopWords, punct)

	return &WordResult{
		Words:       Rank(filtered, topN),
		Punctuation: Rank(punctuation, topN),
		Cloud:       Rank(filtered, s.opts.CloudTopN),
	}, nil
}
