package tablemap

import (
	"cmp"
	"slices"
)

// mergeSort sorts entries by key with a top-down merge sort. The sort is
// stable; NewSortedMapFromEntries relies on that for last-wins duplicate
// handling.
func mergeSort[K cmp.Ordered, V any](s []Entry[K, V]) {
	if len(s) < 2 {
		return
	}

	mid := len(s) / 2
	s1 := slices.Clone(s[:mid])
	s2 := slices.Clone(s[mid:])

	mergeSort(s1)
	mergeSort(s2)
	merge(s1, s2, s)
}

// merge combines the sorted runs s1 and s2 back into s, taking from s1 on
// ties to keep the sort stable.
func merge[K cmp.Ordered, V any](s1, s2, s []Entry[K, V]) {
	i, j := 0, 0
	for i+j < len(s) {
		if j == len(s2) || (i < len(s1) && s1[i].Key <= s2[j].Key) {
			s[i+j] = s1[i]
			i++
		} else {
			s[i+j] = s2[j]
			j++
		}
	}
}
