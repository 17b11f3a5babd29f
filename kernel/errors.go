package kernel

import "errors"

// Kernel misuse errors. These are never returned to callers — they are
// always the payload of a panic, raised synchronously at the offending
// call. A Process body's own errors never take this path; they resolve
// that process's completion Event instead (see process.go).
var (
	// ErrInvalidSchedule is raised when Schedule is called with a
	// negative delay.
	ErrInvalidSchedule = errors.New("kernel: schedule delay must be >= 0")

	// ErrAlreadyResolved is raised when Succeed or Fail is called on an
	// Event that is no longer pending.
	ErrAlreadyResolved = errors.New("kernel: event already resolved")

	// ErrUnbalancedRelease is raised when Resource.Release is called
	// without a matching successful Acquire.
	ErrUnbalancedRelease = errors.New("kernel: resource released without a matching acquire")

	// ErrEmptyCombinator is raised when AllOf or FirstOf is given no
	// events to wait on.
	ErrEmptyCombinator = errors.New("kernel: combinator requires at least one event")

	// ErrPastSchedule is raised by Step when the entry it pops is timed
	// earlier than the environment's current time.
	ErrPastSchedule = errors.New("kernel: cannot schedule an event in the past")
)
