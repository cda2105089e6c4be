package dijkstra

import (
	"container/heap"
	"slices"
)

// nodeItem is a frontier entry. seq is the push counter used to break ties.
type nodeItem struct {
	id   int
	dist int64
	seq  int
}

// nodePQ is a min-heap of nodeItem ordered by (dist, seq).
// Stale entries stay in the heap and are skipped when popped (lazy decrease-key).
type nodePQ struct {
	items []nodeItem
	next  int
}

func (pq *nodePQ) Len() int { return len(pq.items) }

func (pq *nodePQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.seq < b.seq
}

func (pq *nodePQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push is called by heap.Push; use push instead.
func (pq *nodePQ) Push(x any) { pq.items = append(pq.items, x.(nodeItem)) }

// Pop is called by heap.Pop; use pop instead.
func (pq *nodePQ) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}

// push stamps the entry with the next sequence number.
func (pq *nodePQ) push(id int, dist int64) {
	heap.Push(pq, nodeItem{id: id, dist: dist, seq: pq.next})
	pq.next++
}

func (pq *nodePQ) pop() nodeItem {
	return heap.Pop(pq).(nodeItem)
}

// entries lists the heap contents in pop order without disturbing the heap.
func (pq *nodePQ) entries() []Entry {
	sorted := slices.Clone(pq.items)
	slices.SortFunc(sorted, func(a, b nodeItem) int {
		if a.dist != b.dist {
			if a.dist < b.dist {
				return -1
			}

			return 1
		}

		return a.seq - b.seq
	})
	out := make([]Entry, len(sorted))
	for i, it := range sorted {
		out[i] = Entry{Node: it.id, Dist: it.dist}
	}

	return out
}
