package services

import (
	"container/heap"
	"iter"

	"github.com/custodia-labs/wordfreq/internal/core/domain"
)

// rankHeap is a min-heap under ranking order: the root is the entry that
// ranks last, so it is the one evicted when a better entry arrives.
type rankHeap []domain.WordCount

func (h rankHeap) Len() int           { return len(h) }
func (h rankHeap) Less(i, j int) bool { return domain.RanksBefore(h[j], h[i]) }
func (h rankHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *rankHeap) Push(x any)        { *h = append(*h, x.(domain.WordCount)) }
func (h *rankHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// SelectTop returns the k best-ranked entries in ranking order: count
// descending, then word ascending. The result depends only on the set of
// entries, never on the order they arrive in. Fewer than k entries are
// returned unpadded; k <= 0 selects nothing.
//
// The first error yielded by entries aborts the selection.
func SelectTop(entries iter.Seq2[domain.WordCount, error], k int) ([]domain.WordCount, error) {
	if k <= 0 {
		return []domain.WordCount{}, nil
	}

	h := make(rankHeap, 0, k)
	for wc, err := range entries {
		if err != nil {
			return nil, err
		}
		switch {
		case h.Len() < k:
			heap.Push(&h, wc)
		case domain.RanksBefore(wc, h[0]):
			h[0] = wc
			heap.Fix(&h, 0)
		}
	}

	top := []domain.WordCount(h)
	domain.SortByRank(top)
	return top, nil
}
