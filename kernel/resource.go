package kernel

import "log"

// Resource is a counting semaphore with a FIFO waiter list. Its
// invariant is 0 <= inUse <= capacity, and inUse < capacity implies the
// waiter list is empty.
type Resource struct {
	env      *Environment
	capacity int
	inUse    int
	waiters  []*Event
}

// NewResource creates a Resource with the given capacity, owned by env.
func NewResource(env *Environment, capacity int) *Resource {
	return &Resource{env: env, capacity: capacity}
}

// Acquire grants capacity immediately (an already-succeeded Event) if
// available, otherwise queues a pending Event whose onCancel hook
// removes it from the waiter list if it loses a FirstOf race.
func (r *Resource) Acquire() *Event {
	if r.inUse < r.capacity {
		r.inUse++

		ev := NewEvent(r.env)
		ev.Succeed(nil)
		return ev
	}

	ev := NewEvent(r.env)
	r.waiters = append(r.waiters, ev)
	ev.onCancel = func() {
		r.removeWaiter(ev)
	}
	return ev
}

// Release frees one unit of capacity. If a waiter is pending it is
// handed the freed capacity directly (inUse never actually drops);
// otherwise inUse decrements. Releasing without holding a unit of
// capacity is a kernel misuse error.
func (r *Resource) Release() {
	if r.inUse == 0 {
		log.Panic(ErrUnbalancedRelease)
	}

	if len(r.waiters) > 0 {
		waiter := r.waiters[0]
		r.waiters = r.waiters[1:]
		waiter.Succeed(nil)
		return
	}

	r.inUse--
}

func (r *Resource) removeWaiter(ev *Event) {
	for i, w := range r.waiters {
		if w == ev {
			r.waiters = append(r.waiters[:i], r.waiters[i+1:]...)
			return
		}
	}
}

// InUse returns the number of currently held units.
func (r *Resource) InUse() int { return r.inUse }

// Capacity returns the total capacity.
func (r *Resource) Capacity() int { return r.capacity }
