package kernel

import "container/heap"

// Less reports whether a sorts before b in a PriorityQueue. Equal items
// (neither Less(a,b) nor Less(b,a)) are served in insertion order.
type Less func(a, b any) bool

// PriorityQueue is shaped like Queue but delivers items smallest-first
// by a caller-supplied comparator instead of insertion order. Getters
// still queue FIFO when nothing is buffered.
type PriorityQueue struct {
	env     *Environment
	less    Less
	items   pqHeap
	getters []*Event
}

// NewPriorityQueue creates an empty PriorityQueue ordered by less, owned
// by env.
func NewPriorityQueue(env *Environment, less Less) *PriorityQueue {
	pq := &PriorityQueue{env: env, less: less}
	pq.items.less = less
	heap.Init(&pq.items)
	return pq
}

// Put enqueues x, returning an already-succeeded Event. If a getter is
// already waiting, the heap must be empty (the invariant Queue also
// upholds), so x is trivially the minimum and is handed to the oldest
// waiter directly rather than round-tripped through the heap. This
// shortcut only holds because Put never blocks. A bounded variant that
// let Put itself wait would need to reconsider it.
func (pq *PriorityQueue) Put(x any) *Event {
	if len(pq.getters) > 0 {
		getter := pq.getters[0]
		pq.getters = pq.getters[1:]
		getter.Succeed(x)
	} else {
		heap.Push(&pq.items, pqItem{value: x, seq: pq.items.nextSeq()})
	}

	ev := NewEvent(pq.env)
	ev.Succeed(nil)
	return ev
}

// Get returns an already-succeeded Event carrying the current minimum,
// or a pending Event queued FIFO if nothing is buffered.
func (pq *PriorityQueue) Get() *Event {
	if pq.items.Len() > 0 {
		item := heap.Pop(&pq.items).(pqItem)

		ev := NewEvent(pq.env)
		ev.Succeed(item.value)
		return ev
	}

	ev := NewEvent(pq.env)
	pq.getters = append(pq.getters, ev)
	ev.onCancel = func() {
		pq.removeGetter(ev)
	}
	return ev
}

func (pq *PriorityQueue) removeGetter(ev *Event) {
	for i, g := range pq.getters {
		if g == ev {
			pq.getters = append(pq.getters[:i], pq.getters[i+1:]...)
			return
		}
	}
}

// Len returns the number of buffered items.
func (pq *PriorityQueue) Len() int { return pq.items.Len() }

type pqItem struct {
	value any
	seq   uint64
}

// pqHeap is a container/heap implementation ordered by less, breaking
// ties on insertion sequence so equal items come out FIFO.
type pqHeap struct {
	data []pqItem
	less Less
	seq  uint64
}

func (h *pqHeap) nextSeq() uint64 {
	h.seq++
	return h.seq
}

func (h pqHeap) Len() int { return len(h.data) }

func (h pqHeap) Less(i, j int) bool {
	a, b := h.data[i], h.data[j]
	if h.less(a.value, b.value) {
		return true
	}
	if h.less(b.value, a.value) {
		return false
	}
	return a.seq < b.seq
}

func (h pqHeap) Swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *pqHeap) Push(x any) {
	h.data = append(h.data, x.(pqItem))
}

func (h *pqHeap) Pop() any {
	old := h.data
	n := len(old)
	item := old[n-1]
	h.data = old[:n-1]
	return item
}
