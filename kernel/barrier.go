package kernel

// Barrier is a reusable rendezvous point: any number of Processes can
// Wait on it, and a Release call resolves every waiter accumulated so
// far, in the order they arrived, then empties the waiter list for the
// next round. There is no count-based auto-release; the caller owns the
// trigger.
type Barrier struct {
	env     *Environment
	waiters []*Event
}

// NewBarrier creates an empty Barrier owned by env.
func NewBarrier(env *Environment) *Barrier {
	return &Barrier{env: env}
}

// Wait appends a pending Event to the waiter list and returns it. Like
// Queue and Resource waiters, a Wait Event removes itself from the list
// if it loses a FirstOf race, so a later Release does not try to resolve
// an Event nobody is looking at.
func (b *Barrier) Wait() *Event {
	ev := NewEvent(b.env)
	b.waiters = append(b.waiters, ev)
	ev.onCancel = func() {
		b.removeWaiter(ev)
	}
	return ev
}

func (b *Barrier) removeWaiter(ev *Event) {
	for i, w := range b.waiters {
		if w == ev {
			b.waiters = append(b.waiters[:i], b.waiters[i+1:]...)
			return
		}
	}
}

// Release resolves every accumulated waiter with a nil value, in
// insertion order, and empties the list.
func (b *Barrier) Release() {
	waiters := b.waiters
	b.waiters = nil

	for _, w := range waiters {
		w.Succeed(nil)
	}
}

// Waiting returns the number of Processes currently parked on Wait.
func (b *Barrier) Waiting() int { return len(b.waiters) }
