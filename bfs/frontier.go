package bfs

import (
	"container/heap"
)

// frontier holds cells that have a tentative distance but are not finalized.
type frontier interface {
	push(id, dist int)
	pop() (id int, ok bool)
	reset()
}

func newFrontier(f Frontier, capacity int) frontier {
	if f == Priority {
		return &priorityQueue{items: make(distHeap, 0, capacity)}
	}
	return &fifoQueue{items: make([]int, 0, capacity)}
}

// fifoQueue is a slice-backed queue. Popped slots are reclaimed on reset only,
// so one run never holds more than V entries.
type fifoQueue struct {
	items []int
	head  int
}

func (q *fifoQueue) push(id, _ int) { q.items = append(q.items, id) }

func (q *fifoQueue) pop() (int, bool) {
	if q.head == len(q.items) {
		return 0, false
	}
	id := q.items[q.head]
	q.head++
	return id, true
}

func (q *fifoQueue) reset() {
	q.items = q.items[:0]
	q.head = 0
}

// priorityQueue is a min-heap of (id, dist) pairs using lazy decrease-key:
// an improved distance pushes a new entry and the stale one is skipped when
// popped because its cell is already visited.
type priorityQueue struct {
	items distHeap
}

func (q *priorityQueue) push(id, dist int) {
	heap.Push(&q.items, distItem{id: id, dist: dist})
}

func (q *priorityQueue) pop() (int, bool) {
	if q.items.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&q.items).(distItem).id, true
}

func (q *priorityQueue) reset() { q.items = q.items[:0] }

// distItem is a cell and the tentative distance it was pushed with.
type distItem struct {
	id   int
	dist int
}

// distHeap orders distItems by dist ascending, then id ascending.
type distHeap []distItem

// Len returns the number of items in the heap.
func (h distHeap) Len() int { return len(h) }

// Less defines the comparison: smaller dist → higher priority.
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].id < h[j].id
}

// Swap swaps two elements in the heap.
func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap; x must be a distItem.
func (h *distHeap) Push(x any) { *h = append(*h, x.(distItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
