package kernel

import (
	"container/heap"
	"log"
)

// VTime is a point in the simulator's virtual time, in arbitrary units.
// It never advances while a callback is executing, only between them.
type VTime float64

// Handle refers to a single entry scheduled on an Environment. Cancel
// marks the entry's callback as a no-op; the entry itself stays in the
// scheduler heap until it would have been dequeued anyway.
type Handle struct {
	entry *scheduledEntry
}

// Cancel prevents the scheduled callback from running. It is a no-op if
// the entry already ran or was already cancelled.
func (h Handle) Cancel() {
	h.entry.cancelled = true
}

type scheduledEntry struct {
	time      VTime
	serial    uint64
	fn        func()
	cancelled bool
	label     string
}

// entryHeap orders scheduledEntry values lexicographically by
// (time, serial), which is what gives the Environment its deterministic
// dispatch order.
type entryHeap []*scheduledEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].serial < h[j].serial
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(*scheduledEntry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// StopCondition tells Run when to stop. Use Until, UntilEvent, or the
// zero value StopCondition{} (run until the scheduler empties).
type StopCondition struct {
	hasTime bool
	time    VTime
	event   *Event
}

// Until stops Run once the next scheduled entry's time would exceed t;
// the clock advances to exactly t and Run returns.
func Until(t VTime) StopCondition {
	return StopCondition{hasTime: true, time: t}
}

// UntilEvent stops Run as soon as the given event has resolved.
func UntilEvent(e *Event) StopCondition {
	return StopCondition{event: e}
}

// Environment owns the virtual clock, the scheduler heap, and the
// monotonic serial counter that breaks same-time ties. All Events,
// Queues, Resources, Barriers, and Processes in one simulation are
// created against one Environment; nothing here is package-level state,
// so independent Environments never interfere with each other.
type Environment struct {
	now    VTime
	serial uint64
	heap   entryHeap

	hooks []Hook
}

// NewEnvironment creates a fresh Environment at time zero.
func NewEnvironment() *Environment {
	e := &Environment{}
	heap.Init(&e.heap)
	return e
}

// Now returns the current virtual time.
func (e *Environment) Now() VTime { return e.now }

// Schedule registers fn to run at now+delay. Entries scheduled with
// equal time run in the order they were scheduled.
func (e *Environment) Schedule(delay VTime, fn func()) Handle {
	return e.ScheduleLabeled(delay, "", fn)
}

// ScheduleLabeled is Schedule plus a label attached to the scheduled
// entry for hooks (tracing, monitor) to report. The label has no effect
// on ordering or dispatch.
func (e *Environment) ScheduleLabeled(delay VTime, label string, fn func()) Handle {
	if delay < 0 {
		log.Panicf("%v: delay %v", ErrInvalidSchedule, delay)
	}

	entry := &scheduledEntry{
		time:   e.now + delay,
		serial: e.serial,
		fn:     fn,
		label:  label,
	}
	e.serial++
	heap.Push(&e.heap, entry)

	return Handle{entry: entry}
}

// ScheduleEvent schedules ev to succeed with value at now+delay. It is
// sugar over Schedule, used by Timeout.
func (e *Environment) ScheduleEvent(delay VTime, ev *Event, value any) Handle {
	return e.Schedule(delay, func() {
		ev.Succeed(value)
	})
}

// Step pops and dispatches exactly one scheduled entry, advancing the
// clock to its time. It reports whether an entry was dispatched.
func (e *Environment) Step() bool {
	if e.heap.Len() == 0 {
		return false
	}

	entry := heap.Pop(&e.heap).(*scheduledEntry)
	if entry.time < e.now {
		log.Panicf("%v: entry at %v, now %v", ErrPastSchedule, entry.time, e.now)
	}
	e.now = entry.time

	e.invokeHooks(HookPosBeforeEvent, entry)
	if !entry.cancelled {
		entry.fn()
	}
	e.invokeHooks(HookPosAfterEvent, entry)

	return true
}

// Run drives the loop until the scheduler empties, the clock would pass
// stop's time, or stop's event resolves.
func (e *Environment) Run(stop StopCondition) {
	for {
		if stop.event != nil && !stop.event.IsPending() {
			return
		}

		if e.heap.Len() == 0 {
			return
		}

		next := e.heap[0]
		if stop.hasTime && next.time > stop.time {
			e.now = stop.time
			return
		}

		e.Step()
	}
}
