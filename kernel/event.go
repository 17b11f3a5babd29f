package kernel

import "log"

// State is one of the three terminal-or-not states an Event can be in.
type State int

const (
	Pending State = iota
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type subscriber func(value any, err error)

// Event is a one-shot future: it starts pending, and transitions exactly
// once to succeeded (carrying a value) or failed (carrying an error).
// Subscribers are notified in the order they subscribed, always through
// the owning Environment's scheduler rather than inline, so that
// resolving many events inside one callback cannot deepen the call stack
// and the global (time, serial) dispatch order stays authoritative.
type Event struct {
	env   *Environment
	state State
	value any
	err   error

	subscribers []subscriber

	// onCancel is set by whichever constructor created this Event
	// (Timeout, Queue.Get, Resource.Acquire, Barrier.Wait, AllOf,
	// FirstOf) and is invoked by FirstOf when this Event loses a race
	// while still pending. It both removes the Event from any waiter
	// list it sits in and prevents whatever would otherwise resolve it
	// from doing so.
	onCancel func()
}

// NewEvent returns a fresh pending Event owned by env.
func NewEvent(env *Environment) *Event {
	return &Event{env: env}
}

// IsPending, IsSucceeded, IsFailed report the Event's current state.
func (e *Event) IsPending() bool   { return e.state == Pending }
func (e *Event) IsSucceeded() bool { return e.state == Succeeded }
func (e *Event) IsFailed() bool    { return e.state == Failed }

// State returns the Event's current state.
func (e *Event) State() State { return e.state }

// Value returns the value the Event succeeded with, or nil.
func (e *Event) Value() any { return e.value }

// Err returns the error the Event failed with, or nil.
func (e *Event) Err() error { return e.err }

// Succeed transitions the Event from pending to succeeded with value v,
// scheduling every subscriber's callback to run at the current time in
// subscription order. It panics with ErrAlreadyResolved if the Event is
// not pending.
func (e *Event) Succeed(v any) {
	if e.state != Pending {
		log.Panicf("%v: %s", ErrAlreadyResolved, e.state)
	}

	e.state = Succeeded
	e.value = v
	e.dispatch()
}

// Fail transitions the Event from pending to failed with err, scheduling
// every subscriber's callback the same way Succeed does. It panics with
// ErrAlreadyResolved if the Event is not pending.
func (e *Event) Fail(err error) {
	if e.state != Pending {
		log.Panicf("%v: %s", ErrAlreadyResolved, e.state)
	}

	e.state = Failed
	e.err = err
	e.dispatch()
}

func (e *Event) dispatch() {
	value, err := e.value, e.err
	for _, sub := range e.subscribers {
		sub := sub
		e.env.ScheduleLabeled(0, "event.dispatch", func() {
			sub(value, err)
		})
	}
	e.subscribers = nil
}

// Subscribe registers cb to run when the Event resolves. If the Event
// has already resolved, cb is still dispatched through the Environment's
// scheduler (at now+0) rather than invoked inline, so that subscribing
// after resolution behaves exactly like subscribing before it from the
// point of view of global dispatch order.
func (e *Event) Subscribe(cb func(value any, err error)) {
	if e.state == Pending {
		e.subscribers = append(e.subscribers, cb)
		return
	}

	value, err := e.value, e.err
	e.env.ScheduleLabeled(0, "event.subscribe-after-resolve", func() {
		cb(value, err)
	})
}

// cancel marks a still-pending Event as a loser of a FirstOf race: it
// invokes the Event's onCancel hook, if any, and leaves the Event
// pending forever — nothing will ever resolve it again because whatever
// held the reference needed to resolve it (a scheduled Timeout callback,
// a Queue's waiter-list entry, a Resource's waiter-list entry) has just
// removed or neutralized that reference.
func (e *Event) cancel() {
	if e.state != Pending {
		return
	}
	if e.onCancel != nil {
		e.onCancel()
	}
}
