package corpus

// FrequencyMap 是按首次出现顺序记录的词频表。
// 排序时以该顺序作为同频项的先后次序。
type FrequencyMap struct {
	keys   []string
	counts map[string]int
}

// NewFrequencyMap 创建一个空的词频表。
func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{counts: make(map[string]int)}
}

// Count 统计 labels 中每个标签出现的次数。
func Count(labels []string) *FrequencyMap {
	m := NewFrequencyMap()
	for _, l := range labels {
		m.Add(l, 1)
	}
	return m
}

// Add 为 label 增加 n 次计数。
func (m *FrequencyMap) Add(label string, n int) {
	if _, ok := m.counts[label]; !ok {
		m.keys = append(m.keys, label)
	}
	m.counts[label] += n
}

// Get 返回 label 的计数。
func (m *FrequencyMap) Get(label string) (int, bool) {
	n, ok := m.counts[label]
	return n, ok
}

// Remove 删除 label 并返回其原计数。
func (m *FrequencyMap) Remove(label string) (int, bool) {
	n, ok := m.counts[label]
	if !ok {
		return 0, false
	}
	delete(m.counts, label)
	for i, k := range m.keys {
		if k == label {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return n, true
}

// Len 返回不同标签的数量。
func (m *FrequencyMap) Len() int { return len(m.keys) }

// Total 返回所有计数之和。
func (m *FrequencyMap) Total() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}

// Labels 按首次出现顺序返回所有标签。
func (m *FrequencyMap) Labels() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Clone 返回一份独立的拷贝。
func (m *FrequencyMap) Clone() *FrequencyMap {
	c := &FrequencyMap{
		keys:   make([]string, len(m.keys)),
		counts: make(map[string]int, len(m.counts)),
	}
	copy(c.keys, m.keys)
	for k, v := range m.counts {
		c.counts[k] = v
	}
	return c
}
