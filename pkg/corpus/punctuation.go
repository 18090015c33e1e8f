package corpus

// punctuationGlyphs 是从词频表中分离出来的常用标点，包含半角与全角。
const punctuationGlyphs = `,.;:'"[]{}，。/；：-=+><【】?？《》!！@#$%^&*()（）～~、”“‘’|\_…·「」『』〈〉—`

// Punctuation 是默认的标点集合。
var Punctuation = NewPunctuationSet(punctuationGlyphs)

// PunctuationSet 是按 rune 划分的标点集合，同时保留定义顺序。
type PunctuationSet struct {
	glyphs []string
	index  map[string]struct{}
}

// NewPunctuationSet 用 glyphs 中的每个字符构造集合，重复字符只保留一次。
func NewPunctuationSet(glyphs string) *PunctuationSet {
	p := &PunctuationSet{index: make(map[string]struct{})}
	for _, r := range glyphs {
		g := string(r)
		if _, ok := p.index[g]; ok {
			continue
		}
		p.index[g] = struct{}{}
		p.glyphs = append(p.glyphs, g)
	}
	return p
}

// Contains 判断 label 是否为标点。
func (p *PunctuationSet) Contains(label string) bool {
	if p == nil {
		return false
	}
	_, ok := p.index[label]
	return ok
}

// Glyphs 返回集合中的所有标点。
func (p *PunctuationSet) Glyphs() []string {
	out := make([]string, len(p.glyphs))
	copy(out, p.glyphs)
	return out
}
