package kernel

// Body is a user-defined cooperative routine. It runs until it returns
// (terminating the Process with that value/error) or calls
// (*Process).Await, which is the only place it may suspend.
type Body func(p *Process) (any, error)

type resumeMsg struct {
	value any
	err   error
}

// Process adapts a Body to the Event substrate by running it on its own
// goroutine and keeping that goroutine in lockstep with whichever
// goroutine drives the owning Environment's Run loop, through the
// unbuffered resume/yielded channel pair below. Exactly one of the two
// goroutines is ever actually running at a time — the other is always
// parked on a channel receive — so a Process never introduces real
// parallelism into the simulation.
type Process struct {
	env     *Environment
	resume  chan resumeMsg
	yielded chan struct{}

	completion *Event

	terminated bool
	finalValue any
	finalErr   error
}

// Spawn creates a Process running body, schedules its first step at the
// current time, and returns it. Any setup the caller needs is simply
// whatever they did to their own state (often a closure's captured
// struct) before calling Spawn.
func Spawn(env *Environment, body Body) *Process {
	p := &Process{
		env:        env,
		resume:     make(chan resumeMsg),
		yielded:    make(chan struct{}),
		completion: NewEvent(env),
	}

	env.ScheduleLabeled(0, "process.start", func() {
		go p.runBody(body)
		<-p.yielded
		p.settleIfTerminated()
	})

	return p
}

// runBody executes the user's Body on its own goroutine. It never
// touches Event state directly — it only ever writes finalValue/finalErr
// (strictly before signaling yielded, so the happens-before edge that
// channel operation establishes makes the read in settleIfTerminated
// safe) and leaves resolving the completion Event to whichever goroutine
// is driving the Environment, preserving the no-locking invariant.
func (p *Process) runBody(body Body) {
	value, err := body(p)
	p.finalValue, p.finalErr = value, err
	p.terminated = true
	p.yielded <- struct{}{}
}

// settleIfTerminated resolves the completion Event once runBody has
// returned. It must only be called by the goroutine that just received
// from p.yielded.
func (p *Process) settleIfTerminated() {
	if !p.terminated {
		return
	}

	if p.finalErr != nil {
		p.completion.Fail(p.finalErr)
		return
	}
	p.completion.Succeed(p.finalValue)
}

// Await is the only suspension point a Body may use. It subscribes to e,
// hands control back to the driving goroutine, and blocks until e
// resolves and the driving goroutine replies. A failed e surfaces as a
// non-nil error return, which the Body may handle and continue from, or
// return to propagate and terminate the Process.
func (p *Process) Await(e *Event) (any, error) {
	e.Subscribe(func(value any, err error) {
		p.resume <- resumeMsg{value: value, err: err}
		<-p.yielded
		p.settleIfTerminated()
	})

	p.yielded <- struct{}{}
	msg := <-p.resume
	return msg.value, msg.err
}

// Sleep suspends the Process for d virtual-time units. It is sugar over
// Await(Timeout(env, d, nil)).
func (p *Process) Sleep(d VTime) (any, error) {
	return p.Await(Timeout(p.env, d, nil))
}

// Now returns the Environment's current virtual time.
func (p *Process) Now() VTime { return p.env.Now() }

// Env returns the owning Environment, for constructing Queues, Resources
// and the like from within a Body.
func (p *Process) Env() *Environment { return p.env }

// Completion returns an Event that resolves when the Process terminates:
// succeeded with the Body's return value, or failed with its returned
// error. Other Processes await it the same way they await any Event,
// which is the only sanctioned way to observe a Process's lifecycle from
// the outside; there is no out-of-band interrupt.
func (p *Process) Completion() *Event { return p.completion }
