package domain

import "sort"

// DefaultTopK is the number of entries a report ranks unless told otherwise.
const DefaultTopK = 20

// WordCount pairs a normalised word with its number of occurrences.
type WordCount struct {
	// Word is a lowercase run of letters and digits.
	Word string `json:"word"`

	// Count is the number of occurrences, at least 1 for stored words.
	Count uint64 `json:"count"`
}

// RanksBefore reports whether a is ranked ahead of b.
// Higher counts rank first; equal counts rank by word in ascending
// byte order. No two distinct words compare equal, so the order is total.
func RanksBefore(a, b WordCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// SortByRank sorts counts in place into ranking order.
func SortByRank(counts []WordCount) {
	sort.Slice(counts, func(i, j int) bool {
		return RanksBefore(counts[i], counts[j])
	})
}
