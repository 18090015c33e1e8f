package corpus

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {
	m := Count([]string{"b", "a", "c", "a", "b", "d"})

	cases := []struct {
		topN int
		want []Entry
	}{
		{0, []Entry{}},
		{-1, []Entry{}},
		{2, []Entry{{"b", 2}, {"a", 2}}},
		{10, []Entry{{"b", 2}, {"a", 2}, {"c", 1}, {"d", 1}}},
	}
	for _, c := range cases {
		if got := Rank(m, c.topN); !reflect.DeepEqual(got, c.want) {
			t.Errorf("Rank(topN=%d) = %v, 期望 %v", c.topN, got, c.want)
		}
	}
	if got := Rank(nil, 5); len(got) != 0 {
		t.Errorf("Rank(nil) 应为空, 实际得到 %v", got)
	}
}

func TestFrequencyMap(t *testing.T) {
	m := Count([]string{"x", "y", "x", "z"})
	if m.Len() != 3 || m.Total() != 4 {
		t.Fatalf("Len/Total 不符: %d %d", m.Len(), m.Total())
	}
	if n, ok := m.Remove("y"); !ok || n != 1 {
		t.Errorf("Remove(y) = %d %v", n, ok)
	}
	if _, ok := m.Remove("y"); ok {
		t.Error("重复删除应返回 false")
	}
	m.Add("y", 3)
	if got := m.Labels(); !reflect.DeepEqual(got, []string{"x", "z", "y"}) {
		t.Errorf("删除后重新加入的标签应排在最后, 实际得到 %v", got)
	}
	if n, _ := m.Get("y"); n != 3 {
		t.Errorf("Get(y) = %d", n)
	}
}

func TestFilter(t *testing.T) {
	freq := Count([]string{"猫", "，", "的", "！", "，", "。"})
	filtered, punct := Filter(freq, []string{"的", "。"}, Punctuation)

	if got := filtered.Labels(); !reflect.DeepEqual(got, []string{"猫"}) {
		t.Errorf("过滤后应只剩 猫, 实际得到 %v", got)
	}
	if got := Rank(punct, 10); !reflect.DeepEqual(got, []Entry{{"，", 2}, {"！", 1}}) {
		t.Errorf("标点表不符: %v", got)
	}
	if freq.Len() != 5 || freq.Total() != 6 {
		t.Error("Filter 不应修改输入")
	}

	_, punct = Filter(freq, nil, nil)
	if punct.Len() != 0 {
		t.Errorf("未提供标点集合时标点表应为空, 实际得到 %v", punct.Labels())
	}
}

func TestPunctuationSet(t *testing.T) {
	for _, g := range []string{",", "，", "！", "!", "“", "”", "、", "（", "-"} {
		if !Punctuation.Contains(g) {
			t.Errorf("默认标点集合应包含 %q", g)
		}
	}
	if Punctuation.Contains("猫") {
		t.Error("默认标点集合不应包含汉字")
	}
	p := NewPunctuationSet("--,")
	if got := p.Glyphs(); !reflect.DeepEqual(got, []string{"-", ","}) {
		t.Errorf("重复字符应只保留一次, 实际得到 %v", got)
	}
}

func TestPosLabel(t *testing.T) {
	if l, ok := PosLabel("ns"); !ok || l != "地名" {
		t.Errorf("PosLabel(ns) = %s %v", l, ok)
	}
	if _, ok := PosLabel("unknown"); ok {
		t.Error("未知词性应返回 false")
	}
}
