package gojieba

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/afumu/corpus/pkg/tokenizer"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/yanyiwu/gojieba"
)

// Name 是该引擎在注册表中的名称。
const Name = "gojieba"

var errClosed = errors.New("gojieba: tokenizer closed")

func init() {
	tokenizer.Register(Name, NewTokenizer)
}

// Config 是 jieba 词典文件路径，留空时使用 gojieba 自带的词典。
type Config struct {
	DictPath      string `mapstructure:"dict_path"`
	HMMPath       string `mapstructure:"hmm_path"`
	UserDictPath  string `mapstructure:"user_dict_path"`
	IDFPath       string `mapstructure:"idf_path"`
	StopWordsPath string `mapstructure:"stop_words_path"`
	// HMM 控制精确模式下是否启用 HMM 新词发现。
	HMM bool `mapstructure:"hmm"`
	// UserWordFreq 大于 0 时，每个用户词都以该词频登记，包括词典中已有的词；
	// 为 0 时只登记词典切不出整词的用户词，使用 cppjieba 的默认权重。
	UserWordFreq int `mapstructure:"user_word_freq"`
}

// JiebaTokenizer 包装一个只读的基础 jieba 实例。
// cppjieba 删除词条会破坏整棵前缀子树，所以基础实例从不加词；
// 带用户词的调用在一个按相同词典新建的实例上完成，该实例按用户词集合缓存。
type JiebaTokenizer struct {
	mu           sync.Mutex
	paths        []string
	base         *gojieba.Jieba
	scratch      *gojieba.Jieba
	scratchKey   string
	hmm          bool
	userWordFreq int
}

// NewTokenizer 从注册表配置构建引擎。
func NewTokenizer(config map[string]interface{}) (tokenizer.Tokenizer, error) {
	conf := Config{HMM: true}
	if err := mapstructure.Decode(config, &conf); err != nil {
		return nil, fmt.Errorf("解析 gojieba 配置失败: %w", err)
	}
	return New(conf), nil
}

// New 使用给定词典创建引擎。
func New(conf Config) *JiebaTokenizer {
	paths := []string{
		orDefault(conf.DictPath, gojieba.DICT_PATH),
		orDefault(conf.HMMPath, gojieba.HMM_PATH),
		orDefault(conf.UserDictPath, gojieba.USER_DICT_PATH),
		orDefault(conf.IDFPath, gojieba.IDF_PATH),
		orDefault(conf.StopWordsPath, gojieba.STOP_WORDS_PATH),
	}
	log.Debug().Strs("paths", paths).Msg("加载 jieba 词典")
	return &JiebaTokenizer{
		paths:        paths,
		base:         gojieba.NewJieba(paths...),
		hmm:          conf.HMM,
		userWordFreq: conf.UserWordFreq,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Cut 以精确模式分词。
func (t *JiebaTokenizer) Cut(text string, userWords []string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.base == nil {
		return nil, errClosed
	}
	return t.engine(userWords).Cut(text, t.hmm), nil
}

// Tag 对文本进行词性标注。
func (t *JiebaTokenizer) Tag(text string, userWords []string) ([]tokenizer.TaggedToken, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.base == nil {
		return nil, errClosed
	}

	pairs := t.engine(userWords).Tag(text)
	tokens := make([]tokenizer.TaggedToken, 0, len(pairs))
	for _, p := range pairs {
		tokens = append(tokens, splitPair(p))
	}
	return tokens, nil
}

// engine 返回处理本次调用的实例：没有用户词时是基础实例，
// 否则是登记了这组用户词的实例。调用方必须持有 t.mu。
func (t *JiebaTokenizer) engine(userWords []string) *gojieba.Jieba {
	words := normalizeWords(userWords)
	if len(words) == 0 {
		return t.base
	}

	key := strings.Join(words, "\n")
	if t.scratch != nil && t.scratchKey == key {
		return t.scratch
	}
	if t.scratch != nil {
		t.scratch.Free()
	}

	x := gojieba.NewJieba(t.paths...)
	for _, w := range words {
		t.insertWord(x, w)
	}
	log.Debug().Int("words", len(words)).Msg("重建带用户词的 jieba 实例")
	t.scratch, t.scratchKey = x, key
	return x
}

func (t *JiebaTokenizer) insertWord(x *gojieba.Jieba, w string) {
	if t.userWordFreq > 0 {
		x.AddWordEx(w, t.userWordFreq, "")
		return
	}
	// 已能整体切出的词保留词典原有权重
	if cut := t.base.Cut(w, false); len(cut) == 1 && cut[0] == w {
		return
	}
	x.AddWord(w)
}

// normalizeWords 去掉空白与重复并排序，得到与顺序无关的用户词集合。
func normalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// splitPair 拆分 gojieba 的 "词/词性" 输出，词本身可能含有 '/'。
func splitPair(p string) tokenizer.TaggedToken {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return tokenizer.TaggedToken{Word: p}
	}
	return tokenizer.TaggedToken{Word: p[:i], Tag: p[i+1:]}
}

// Close 释放底层 C++ 资源。
func (t *JiebaTokenizer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scratch != nil {
		t.scratch.Free()
		t.scratch, t.scratchKey = nil, ""
	}
	if t.base != nil {
		t.base.Free()
		t.base = nil
	}
	return nil
}
