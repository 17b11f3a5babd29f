package kernel

// Queue is an unbounded FIFO channel between Processes. At most one of
// its items and getters is ever nonempty: Put hands an item straight to
// the oldest waiting getter when one exists, and Get only appends a
// waiter when there is nothing buffered.
type Queue struct {
	env     *Environment
	items   []any
	getters []*Event
}

// NewQueue creates an empty Queue owned by env.
func NewQueue(env *Environment) *Queue {
	return &Queue{env: env}
}

// Put enqueues x, returning an already-succeeded Event (the queue is
// unbounded, so Put never blocks). If a getter is already waiting it is
// resolved with x at the current time, preserving FIFO among waiters;
// otherwise x is buffered.
func (q *Queue) Put(x any) *Event {
	if len(q.getters) > 0 {
		getter := q.getters[0]
		q.getters = q.getters[1:]
		getter.Succeed(x)
	} else {
		q.items = append(q.items, x)
	}

	ev := NewEvent(q.env)
	ev.Succeed(nil)
	return ev
}

// Get returns an already-succeeded Event carrying the oldest buffered
// item, or, if the queue is empty, a pending Event appended to the
// waiter list. A pending Get's onCancel hook removes it from the waiter
// list in O(waiters), so a FirstOf that loses this arm leaves no trace
// for a later Put to find.
func (q *Queue) Get() *Event {
	if len(q.items) > 0 {
		x := q.items[0]
		q.items = q.items[1:]

		ev := NewEvent(q.env)
		ev.Succeed(x)
		return ev
	}

	ev := NewEvent(q.env)
	q.getters = append(q.getters, ev)
	ev.onCancel = func() {
		q.removeGetter(ev)
	}
	return ev
}

func (q *Queue) removeGetter(ev *Event) {
	for i, g := range q.getters {
		if g == ev {
			q.getters = append(q.getters[:i], q.getters[i+1:]...)
			return
		}
	}
}

// Len returns the number of buffered items.
func (q *Queue) Len() int { return len(q.items) }

// Waiting returns the number of pending getters.
func (q *Queue) Waiting() int { return len(q.getters) }
