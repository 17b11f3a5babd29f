package kernel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvwilson/asimpy/kernel"
)

func TestEventSucceedNotifiesSubscribersThroughScheduler(t *testing.T) {
	env := kernel.NewEnvironment()
	ev := kernel.NewEvent(env)

	var got any
	var notifiedAt kernel.VTime
	ev.Subscribe(func(value any, err error) {
		got = value
		notifiedAt = env.Now()
		require.NoError(t, err)
	})

	env.Schedule(7, func() {
		ev.Succeed("payload")
	})

	env.Run(kernel.StopCondition{})

	assert.Equal(t, "payload", got)
	assert.Equal(t, kernel.VTime(7), notifiedAt)
	assert.True(t, ev.IsSucceeded())
}

func TestEventFailCarriesError(t *testing.T) {
	env := kernel.NewEnvironment()
	ev := kernel.NewEvent(env)
	boom := errors.New("boom")

	var gotErr error
	ev.Subscribe(func(value any, err error) {
		gotErr = err
	})

	ev.Fail(boom)
	env.Run(kernel.StopCondition{})

	assert.Equal(t, boom, gotErr)
	assert.True(t, ev.IsFailed())
}

func TestEventSucceedTwicePanics(t *testing.T) {
	env := kernel.NewEnvironment()
	ev := kernel.NewEvent(env)
	ev.Succeed(1)

	assert.Panics(t, func() {
		ev.Succeed(2)
	})
}

func TestSubscribeAfterResolveStillDispatchesThroughScheduler(t *testing.T) {
	env := kernel.NewEnvironment()
	ev := kernel.NewEvent(env)
	ev.Succeed("x")

	called := false
	ev.Subscribe(func(value any, err error) {
		called = true
		assert.Equal(t, "x", value)
	})

	assert.False(t, called, "subscribing after resolve must not invoke the callback inline")
	env.Run(kernel.StopCondition{})
	assert.True(t, called)
}

func TestSubscribersRunInSubscriptionOrder(t *testing.T) {
	env := kernel.NewEnvironment()
	ev := kernel.NewEvent(env)

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		ev.Subscribe(func(value any, err error) {
			order = append(order, i)
		})
	}

	ev.Succeed(nil)
	env.Run(kernel.StopCondition{})

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}
