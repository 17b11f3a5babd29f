package kernel

import "log"

// Named pairs a key with the Event it names, for AllOf and FirstOf. A
// plain Go map would not do — map iteration order is randomized, and
// these combinators need deterministic iteration — so both take a
// slice of Named instead, in exactly the order the caller wrote it.
type Named struct {
	Key   string
	Event *Event
}

// FirstOfResult is what the Event returned by FirstOf succeeds with.
type FirstOfResult struct {
	Key   string
	Value any
}

// AllOf returns an Event that succeeds with a map of every child's
// result once all of named have succeeded. If any child fails, the
// combined Event fails immediately with the first child failure in
// resolution order; the remaining children are left alone — they may
// still resolve, but their results are discarded.
func AllOf(env *Environment, named ...Named) *Event {
	if len(named) == 0 {
		log.Panic(ErrEmptyCombinator)
	}

	result := NewEvent(env)
	values := make(map[string]any, len(named))
	remaining := len(named)

	for _, n := range named {
		n := n
		n.Event.Subscribe(func(v any, err error) {
			if !result.IsPending() {
				return
			}

			if err != nil {
				result.Fail(err)
				return
			}

			values[n.Key] = v
			remaining--
			if remaining == 0 {
				result.Succeed(values)
			}
		})
	}

	result.onCancel = func() {
		for _, n := range named {
			n.Event.cancel()
		}
	}

	return result
}

// FirstOf returns an Event that resolves with the (key, value) of
// whichever child resolves first. Every other child is cancelled the
// moment the winner is known: a losing Timeout is dropped from the
// schedule, a losing pending Queue.Get or Resource.Acquire is removed
// from its waiter list, and a losing AllOf/FirstOf cancels its own
// children recursively — all through each child's onCancel hook.
func FirstOf(env *Environment, named ...Named) *Event {
	if len(named) == 0 {
		log.Panic(ErrEmptyCombinator)
	}

	result := NewEvent(env)
	settled := false

	for _, n := range named {
		n := n
		n.Event.Subscribe(func(v any, err error) {
			if settled {
				return
			}
			settled = true

			for _, other := range named {
				if other.Event != n.Event {
					other.Event.cancel()
				}
			}

			if err != nil {
				result.Fail(err)
				return
			}
			result.Succeed(FirstOfResult{Key: n.Key, Value: v})
		})
	}

	result.onCancel = func() {
		for _, n := range named {
			n.Event.cancel()
		}
	}

	return result
}
