package corpus

import "sort"

// Entry 是排序后的一条统计结果。
type Entry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Rank 按计数降序排列并截取前 topN 项，同频时保持首次出现的顺序。
func Rank(freq *FrequencyMap, topN int) []Entry {
	if topN <= 0 || freq == nil || freq.Len() == 0 {
		return []Entry{}
	}

	entries := make([]Entry, 0, freq.Len())
	for _, label := range freq.keys {
		entries = append(entries, Entry{Label: label, Count: freq.counts[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
