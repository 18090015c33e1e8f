package corpus

import (
	"errors"
	"reflect"
	"testing"
	"unicode"

	"github.com/afumu/corpus/pkg/tokenizer"
)

// runeTokenizer 把每个非空白字符切成一个词，汉字标为 n，标点标为 w，数字标为 zz。
type runeTokenizer struct {
	calls     int
	userWords []string
	err       error
}

func (r *runeTokenizer) Cut(text string, userWords []string) ([]string, error) {
	tagged, err := r.Tag(text, userWords)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(tagged))
	for i, t := range tagged {
		out[i] = t.Word
	}
	return out, nil
}

func (r *runeTokenizer) Tag(text string, userWords []string) ([]tokenizer.TaggedToken, error) {
	r.calls++
	r.userWords = userWords
	if r.err != nil {
		return nil, r.err
	}
	var out []tokenizer.TaggedToken
	for _, c := range text {
		tag := "n"
		switch {
		case unicode.IsSpace(c):
			continue
		case unicode.IsPunct(c):
			tag = "w"
		case unicode.IsDigit(c):
			tag = "zz"
		}
		out = append(out, tokenizer.TaggedToken{Word: string(c), Tag: tag})
	}
	return out, nil
}

func (r *runeTokenizer) Close() error { return nil }

func labels(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Label
	}
	return out
}

func hasLabel(entries []Entry, label string) bool {
	for _, e := range entries {
		if e.Label == label {
			return true
		}
	}
	return false
}

func nonIncreasing(t *testing.T, name string, entries []Entry) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		if entries[i].Count > entries[i-1].Count {
			t.Errorf("%s 未按降序排列: %v", name, entries)
			return
		}
	}
}

func TestCharLength(t *testing.T) {
	cases := map[string]int{
		"":           0,
		"你好abc":      5,
		"你好，世界！":     6,
		"量子计算机 rocks": 11,
	}
	for text, want := range cases {
		s := NewSession(&runeTokenizer{}, Request{Text: text}, Options{})
		if got := s.CharLength(); got != want {
			t.Errorf("CharLength(%q) = %d, 期望 %d", text, got, want)
		}
	}
}

func TestCountWords_StopWords(t *testing.T) {
	s := NewSession(&runeTokenizer{}, Request{Text: "的的的猫猫狗", StopWords: []string{"的"}}, Options{})
	res, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}

	want := []Entry{{Label: "猫", Count: 2}, {Label: "狗", Count: 1}}
	if !reflect.DeepEqual(res.Words, want) {
		t.Errorf("期望 %v, 实际得到 %v", want, res.Words)
	}
	if hasLabel(res.Cloud, "的") {
		t.Errorf("词云中不应出现停用词: %v", res.Cloud)
	}
	if s.WordCount() != 3 || s.TokenCount() != 6 {
		t.Errorf("期望 WordCount=3 TokenCount=6, 实际得到 %d %d", s.WordCount(), s.TokenCount())
	}
}

func TestCountWords_DefaultStopWords(t *testing.T) {
	s := NewSession(&runeTokenizer{}, Request{Text: "我的猫了"}, Options{})
	res, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	if got := labels(res.Words); !reflect.DeepEqual(got, []string{"猫"}) {
		t.Errorf("期望只剩 猫, 实际得到 %v", got)
	}
}

func TestCountWords_Punctuation(t *testing.T) {
	s := NewSession(&runeTokenizer{}, Request{Text: "你好，世界！"}, Options{})
	res, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}

	want := []Entry{{Label: "，", Count: 1}, {Label: "！", Count: 1}}
	if !reflect.DeepEqual(res.Punctuation, want) {
		t.Errorf("期望标点表 %v, 实际得到 %v", want, res.Punctuation)
	}
	for _, p := range []string{"，", "！"} {
		if hasLabel(res.Words, p) || hasLabel(res.Cloud, p) {
			t.Errorf("词表中不应出现标点 %s", p)
		}
	}
}

func TestCountWords_StopWordBeatsPunctuation(t *testing.T) {
	s := NewSession(&runeTokenizer{}, Request{Text: "你好，世界，再见。", StopWords: []string{"，"}}, Options{})
	res, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	if hasLabel(res.Punctuation, "，") || hasLabel(res.Words, "，") {
		t.Errorf("既是停用词又是标点的字符应被完全丢弃: %v %v", res.Words, res.Punctuation)
	}
	if got := labels(res.Punctuation); !reflect.DeepEqual(got, []string{"。"}) {
		t.Errorf("期望标点表只有 。, 实际得到 %v", got)
	}
}

func TestCountWords_Empty(t *testing.T) {
	res, err := Analyze(&runeTokenizer{}, Request{Text: ""}, Options{}, 15)
	if err != nil {
		t.Fatalf("Analyze 失败: %v", err)
	}
	if res.CharLength != 0 || len(res.WordCounts) != 0 || len(res.PunctuationCounts) != 0 ||
		len(res.WordCloud) != 0 || len(res.SegCounts) != 0 {
		t.Errorf("空文本应返回空结果, 实际得到 %+v", res)
	}
	if res.WordCounts == nil || res.SegCounts == nil {
		t.Error("空结果应为空切片而不是 nil")
	}
}

func TestCountWords_TokenSum(t *testing.T) {
	text := "天天向上，好好学习，天天向上！"
	tok := &runeTokenizer{}
	words, _ := tok.Cut(text, nil)
	if got := Count(words).Total(); got != len(words) {
		t.Errorf("计数之和 %d 应等于词数 %d", got, len(words))
	}

	s := NewSession(tok, Request{Text: text, StopWords: []string{"上"}}, Options{})
	res, err := s.CountWords(1000)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	sum := 0
	for _, e := range res.Words {
		sum += e.Count
	}
	for _, e := range res.Punctuation {
		sum += e.Count
	}
	// 停用词 上 出现两次，被直接丢弃
	if sum+2 != s.TokenCount() {
		t.Errorf("过滤后计数 %d + 停用词 2 应等于总词数 %d", sum, s.TokenCount())
	}
}

func TestCountWords_Idempotent(t *testing.T) {
	s := NewSession(&runeTokenizer{}, Request{Text: "一二三二三三，。"}, Options{})
	a, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	b, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("两次统计结果不一致: %v != %v", a, b)
	}
}

func TestCountWords_Truncation(t *testing.T) {
	runes := make([]rune, 0, 1200)
	for i := 0; i < 1200; i++ {
		runes = append(runes, rune(0x4E00+i))
	}
	text := string(runes) + "丁丁丁"

	s := NewSession(&runeTokenizer{}, Request{Text: text}, Options{})
	res, err := s.CountWords(15)
	if err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	if len(res.Words) != 15 {
		t.Errorf("期望词表 15 项, 实际得到 %d", len(res.Words))
	}
	if len(res.Cloud) != CloudTopN {
		t.Errorf("期望词云 %d 项, 实际得到 %d", CloudTopN, len(res.Cloud))
	}
	if res.Words[0].Label != "丁" || res.Words[0].Count != 4 {
		t.Errorf("期望第一项为 丁:4, 实际得到 %v", res.Words[0])
	}
	if !reflect.DeepEqual(res.Words, res.Cloud[:15]) {
		t.Error("词表应是词云的前缀")
	}
	nonIncreasing(t, "words", res.Words)
	nonIncreasing(t, "cloud", res.Cloud)

	small := NewSession(&runeTokenizer{}, Request{Text: text}, Options{CloudTopN: 3})
	res, _ = small.CountWords(15)
	if len(res.Cloud) != 3 {
		t.Errorf("期望词云 3 项, 实际得到 %d", len(res.Cloud))
	}
}

func TestCountWords_DeletePunctuationFlag(t *testing.T) {
	text := "你好，世界！"

	// 默认行为：无论标志如何，标点总是被分离出去，标志只用于审计记录。
	for _, flag := range []bool{true, false} {
		s := NewSession(&runeTokenizer{}, Request{Text: text, DeletePunctuation: flag}, Options{})
		res, _ := s.CountWords(15)
		if len(res.Punctuation) != 2 || hasLabel(res.Words, "，") {
			t.Errorf("flag=%v: 默认模式应始终分离标点, 实际得到 %v %v", flag, res.Words, res.Punctuation)
		}
	}

	// 开启 HonorDeletePunctuation 后，标志为 false 时标点保留在词表中。
	s := NewSession(&runeTokenizer{}, Request{Text: text}, Options{HonorDeletePunctuation: true})
	res, _ := s.CountWords(15)
	if len(res.Punctuation) != 0 || !hasLabel(res.Words, "，") || !hasLabel(res.Cloud, "！") {
		t.Errorf("标点应保留在词表中, 实际得到 %v %v", res.Words, res.Punctuation)
	}

	s = NewSession(&runeTokenizer{}, Request{Text: text, DeletePunctuation: true}, Options{HonorDeletePunctuation: true})
	res, _ = s.CountWords(15)
	if len(res.Punctuation) != 2 || hasLabel(res.Words, "，") {
		t.Errorf("标志为 true 时应分离标点, 实际得到 %v %v", res.Words, res.Punctuation)
	}
}

func TestCountWords_UserWordsForwarded(t *testing.T) {
	tok := &runeTokenizer{}
	s := NewSession(tok, Request{Text: "量子计算机", UserWords: []string{"量子计算机", "量子计算机"}}, Options{})
	if _, err := s.CountWords(15); err != nil {
		t.Fatalf("CountWords 失败: %v", err)
	}
	if !reflect.DeepEqual(tok.userWords, []string{"量子计算机", "量子计算机"}) {
		t.Errorf("用户词典应原样传给分词器, 实际得到 %v", tok.userWords)
	}
}

func TestCountSegment(t *testing.T) {
	s := NewSession(&runeTokenizer{}, Request{Text: "猫狗，1鱼"}, Options{})
	segs, err := s.CountSegment(15)
	if err != nil {
		t.Fatalf("CountSegment 失败: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("期望 3 种词性, 实际得到 %v", segs)
	}
	if segs[0].Tag != "n" || segs[0].Count != 3 || segs[0].Label == nil || *segs[0].Label != "名词" {
		t.Errorf("期望第一项为 名词:3, 实际得到 %+v", segs[0])
	}
	if segs[1].Tag != "w" || segs[1].Label == nil || *segs[1].Label != "标点符号" {
		t.Errorf("期望第二项为 标点符号, 实际得到 %+v", segs[1])
	}
	if segs[2].Tag != "zz" || segs[2].Label != nil {
		t.Errorf("未知词性的名称应为 nil, 实际得到 %+v", segs[2])
	}

	segs, _ = s.CountSegment(1)
	if len(segs) != 1 {
		t.Errorf("期望截断为 1 项, 实际得到 %d", len(segs))
	}
}

func TestTokenizerUnavailable(t *testing.T) {
	s := NewSession(nil, Request{Text: "你好"}, Options{})
	if _, err := s.CountWords(15); !errors.Is(err, ErrTokenizerUnavailable) {
		t.Errorf("期望 ErrTokenizerUnavailable, 实际得到 %v", err)
	}
	if _, err := s.CountSegment(15); !errors.Is(err, ErrTokenizerUnavailable) {
		t.Errorf("期望 ErrTokenizerUnavailable, 实际得到 %v", err)
	}
	if _, err := Analyze(nil, Request{}, Options{}, 15); !errors.Is(err, ErrTokenizerUnavailable) {
		t.Errorf("期望 ErrTokenizerUnavailable, 实际得到 %v", err)
	}
}

func TestTokenizerError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSession(&runeTokenizer{err: boom}, Request{Text: "你好"}, Options{})
	if _, err := s.CountWords(15); !errors.Is(err, boom) {
		t.Errorf("期望包装后的 boom, 实际得到 %v", err)
	}
}

func TestAnalyze(t *testing.T) {
	tok := &runeTokenizer{}
	res, err := Analyze(tok, Request{Text: "猫猫狗。"}, Options{}, 15)
	if err != nil {
		t.Fatalf("Analyze 失败: %v", err)
	}
	if tok.calls != 2 {
		t.Errorf("期望调用分词器两次, 实际 %d", tok.calls)
	}
	if res.CharLength != 4 || res.WordCount != 3 || res.TokenCount != 4 {
		t.Errorf("统计值不符: %+v", res)
	}
	if got := labels(res.WordCounts); !reflect.DeepEqual(got, []string{"猫", "狗"}) {
		t.Errorf("词表不符: %v", got)
	}
}
