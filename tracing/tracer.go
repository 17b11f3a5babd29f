// Package tracing turns an Environment's dispatch stream into a sequence
// of Records that can be written to a file for later inspection or
// reproducibility comparison.
package tracing

import "github.com/gvwilson/asimpy/kernel"

// Record is one dispatched scheduler entry.
type Record struct {
	Time   kernel.VTime
	Serial uint64
	Pos    string
	Label  string
}

// Writer accepts Records as they are produced and is responsible for
// getting them onto durable storage before the process exits.
type Writer interface {
	Init()
	Write(r Record)
	Flush()
}

// Tracer is a kernel.Hook that turns every before/after dispatch position
// into a Record and forwards it to a Writer. It never buffers on its own
// account — buffering, if any, is the Writer's responsibility.
type Tracer struct {
	writer Writer
}

// NewTracer creates a Tracer that forwards every Record to w. w.Init is
// called immediately.
func NewTracer(w Writer) *Tracer {
	w.Init()
	return &Tracer{writer: w}
}

// Func implements kernel.Hook.
func (t *Tracer) Func(ctx kernel.HookCtx) {
	pos := "before"
	if ctx.Pos == kernel.HookPosAfterEvent {
		pos = "after"
	}

	t.writer.Write(Record{
		Time:   ctx.Now,
		Serial: ctx.Serial,
		Pos:    pos,
		Label:  ctx.Label,
	})
}

// Flush asks the underlying Writer to flush any buffered Records. Call it
// after a Run completes; atexit-registered flushes in the concrete
// Writers are a backstop for runs that are interrupted.
func (t *Tracer) Flush() {
	t.writer.Flush()
}
