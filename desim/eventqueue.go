package desim

import "container/heap"

// scheduledEntry is the tuple the Scheduler's heap orders on: ascending
// time, ties broken by ascending seq (strict FIFO at identical times).
type scheduledEntry struct {
	time VTime
	seq  uint64
	evt  *Event
}

type entryHeap []scheduledEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x interface{}) {
	*h = append(*h, x.(scheduledEntry))
}

func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[0 : n-1]
	return entry
}

// eventQueue is a min-heap of scheduledEntry, ordered per scheduledEntry's
// doc comment. It carries no mutex: the Scheduler never touches it from
// more than one active goroutine at a time (see Task's wake/parked
// handoff), so a lock would protect against a race that structurally
// cannot happen.
type eventQueue struct {
	entries entryHeap
}

func newEventQueue() *eventQueue {
	q := &eventQueue{entries: make(entryHeap, 0)}
	heap.Init(&q.entries)
	return q
}

func (q *eventQueue) push(e scheduledEntry) {
	heap.Push(&q.entries, e)
}

func (q *eventQueue) pop() scheduledEntry {
	return heap.Pop(&q.entries).(scheduledEntry)
}

func (q *eventQueue) len() int {
	return len(q.entries)
}

func (q *eventQueue) peek() scheduledEntry {
	return q.entries[0]
}
