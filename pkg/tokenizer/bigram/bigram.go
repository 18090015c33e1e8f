// Package bigram 提供一个不依赖词典的分词引擎：
// 中文按二元组切分，英文和数字按连续字母切分，标点单独成词。
// 它不做真正的词性分析，只在无法加载 jieba 时作为退路。
package bigram

import (
	"strings"
	"unicode"

	"github.com/afumu/corpus/pkg/tokenizer"
)

// Name 是该引擎在注册表中的名称。
const Name = "bigram"

func init() {
	tokenizer.Register(Name, func(map[string]interface{}) (tokenizer.Tokenizer, error) {
		return Tokenizer{}, nil
	})
}

// Tokenizer 是无状态的二元组分词器，可并发使用。
type Tokenizer struct{}

func (Tokenizer) Cut(text string, userWords []string) ([]string, error) {
	tokens := tokenize(text, userWords)
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Word
	}
	return words, nil
}

func (Tokenizer) Tag(text string, userWords []string) ([]tokenizer.TaggedToken, error) {
	return tokenize(text, userWords), nil
}

func (Tokenizer) Close() error { return nil }

// tokenize 依次处理中文片段、英文单词、数字和标点。
// 空白字符被丢弃。
func tokenize(text string, userWords []string) []tokenizer.TaggedToken {
	var tokens []tokenizer.TaggedToken
	var hanRunes []rune
	var word strings.Builder
	wordTag := ""

	flushWord := func() {
		if word.Len() > 0 {
			tokens = append(tokens, tokenizer.TaggedToken{Word: strings.ToLower(word.String()), Tag: wordTag})
			word.Reset()
		}
	}
	flushHan := func() {
		tokens = append(tokens, segmentHan(hanRunes, userWords)...)
		hanRunes = hanRunes[:0]
	}

	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			flushWord()
			hanRunes = append(hanRunes, r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			flushHan()
			tag := "eng"
			if unicode.IsDigit(r) {
				tag = "m"
			}
			if word.Len() > 0 && tag != wordTag {
				flushWord()
			}
			wordTag = tag
			word.WriteRune(r)
		default:
			flushHan()
			flushWord()
			if !unicode.IsSpace(r) {
				tokens = append(tokens, tokenizer.TaggedToken{Word: string(r), Tag: "x"})
			}
		}
	}
	flushHan()
	flushWord()
	return tokens
}

// segmentHan 从中文字符序列中提取二元组，用户词优先整体切出。
// 单独的一个汉字作为一元组输出。
func segmentHan(runes []rune, userWords []string) []tokenizer.TaggedToken {
	var tokens []tokenizer.TaggedToken
	start := 0
	emit := func(end int) {
		seg := runes[start:end]
		if len(seg) == 1 {
			tokens = append(tokens, tokenizer.TaggedToken{Word: string(seg)})
		}
		for i := 0; i+1 < len(seg); i++ {
			tokens = append(tokens, tokenizer.TaggedToken{Word: string(seg[i : i+2])})
		}
	}

	for i := 0; i < len(runes); {
		if w := matchUserWord(runes[i:], userWords); w > 0 {
			emit(i)
			tokens = append(tokens, tokenizer.TaggedToken{Word: string(runes[i : i+w]), Tag: "nz"})
			i += w
			start = i
			continue
		}
		i++
	}
	emit(len(runes))
	return tokens
}

// matchUserWord 返回以 runes 开头的最长用户词长度（按 rune 计）。
func matchUserWord(runes []rune, userWords []string) int {
	best := 0
	for _, w := range userWords {
		wr := []rune(strings.TrimSpace(w))
		if len(wr) <= best || len(wr) > len(runes) {
			continue
		}
		if string(runes[:len(wr)]) == string(wr) {
			best = len(wr)
		}
	}
	return best
}
