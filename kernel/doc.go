// Package kernel is a discrete-event simulation substrate: a virtual
// clock, one-shot Events, suspendable Processes, FIFO and priority
// Queues, capacity-bounded Resources, Barriers, and the AllOf/FirstOf
// event combinators. The example workloads under examples/ are all
// built as Processes running on top of it.
//
// Everything here runs on a single logical thread of control. The only
// goroutines the package itself creates are one per live Process, and
// those are kept in lockstep with the driving goroutine through an
// unbuffered channel handshake (see process.go) — at any instant exactly
// one goroutine is actually running kernel or user code, so no mutex
// guards the scheduler, queues, resources, or event state.
package kernel
