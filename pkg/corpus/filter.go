package corpus

// Filter 从词频表中去除停用词，再把剩余的标点移入单独的标点表。
// 停用词先于标点处理，所以既是停用词又是标点的字符会被直接丢弃。
// 入参 freq 不会被修改。
func Filter(freq *FrequencyMap, stopWords []string, punct *PunctuationSet) (*FrequencyMap, *FrequencyMap) {
	filtered := freq.Clone()
	for _, w := range stopWords {
		filtered.Remove(w)
	}

	punctuation := NewFrequencyMap()
	if punct == nil {
		return filtered, punctuation
	}
	for _, label := range filtered.Labels() {
		if !punct.Contains(label) {
			continue
		}
		n, _ := filtered.Remove(label)
		punctuation.Add(label, n)
	}
	return filtered, punctuation
}
