package kernel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gvwilson/asimpy/kernel"
)

func TestAllOfSucceedsWithEveryValue(t *testing.T) {
	env := kernel.NewEnvironment()
	a := kernel.Timeout(env, 1, "a")
	b := kernel.Timeout(env, 3, "b")
	c := kernel.Timeout(env, 2, "c")

	all := kernel.AllOf(env,
		kernel.Named{Key: "a", Event: a},
		kernel.Named{Key: "b", Event: b},
		kernel.Named{Key: "c", Event: c},
	)

	env.Run(kernel.StopCondition{})

	assert.True(t, all.IsSucceeded())
	values := all.Value().(map[string]any)
	assert.Equal(t, "a", values["a"])
	assert.Equal(t, "b", values["b"])
	assert.Equal(t, "c", values["c"])
	assert.Equal(t, kernel.VTime(3), env.Now())
}

func TestAllOfFailsOnFirstChildFailure(t *testing.T) {
	env := kernel.NewEnvironment()
	boom := errors.New("boom")
	bad := kernel.NewEvent(env)
	good := kernel.Timeout(env, 5, "ok")

	all := kernel.AllOf(env,
		kernel.Named{Key: "bad", Event: bad},
		kernel.Named{Key: "good", Event: good},
	)

	bad.Fail(boom)
	env.Run(kernel.Until(0))

	assert.True(t, all.IsFailed())
	assert.Equal(t, boom, all.Err())
}

func TestFirstOfCancelsLosers(t *testing.T) {
	env := kernel.NewEnvironment()
	fast := kernel.Timeout(env, 1, "fast")
	slow := kernel.Timeout(env, 10, "slow")

	first := kernel.FirstOf(env,
		kernel.Named{Key: "fast", Event: fast},
		kernel.Named{Key: "slow", Event: slow},
	)

	env.Run(kernel.StopCondition{})

	assert.True(t, first.IsSucceeded())
	won := first.Value().(kernel.FirstOfResult)
	assert.Equal(t, "fast", won.Key)
	assert.True(t, slow.IsPending())
	// The cancelled entry is still dequeued (as a no-op), so the clock
	// reaches its time.
	assert.Equal(t, kernel.VTime(10), env.Now())
}

func TestEmptyCombinatorsPanic(t *testing.T) {
	env := kernel.NewEnvironment()
	assert.Panics(t, func() { kernel.AllOf(env) })
	assert.Panics(t, func() { kernel.FirstOf(env) })
}

func TestFirstOfOfFirstOfCancelsRecursively(t *testing.T) {
	env := kernel.NewEnvironment()
	innerSlow := kernel.Timeout(env, 20, "inner-slow")
	inner := kernel.FirstOf(env, kernel.Named{Key: "inner-slow", Event: innerSlow})
	outerFast := kernel.Timeout(env, 1, "outer-fast")

	outer := kernel.FirstOf(env,
		kernel.Named{Key: "inner", Event: inner},
		kernel.Named{Key: "outer-fast", Event: outerFast},
	)

	env.Run(kernel.StopCondition{})

	assert.True(t, outer.IsSucceeded())
	won := outer.Value().(kernel.FirstOfResult)
	assert.Equal(t, "outer-fast", won.Key)
	assert.True(t, inner.IsPending())
	assert.True(t, innerSlow.IsPending())
}
