package kernel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gvwilson/asimpy/kernel"
)

func intLess(a, b any) bool { return a.(int) < b.(int) }

func TestPriorityQueueDeliversSmallestFirst(t *testing.T) {
	env := kernel.NewEnvironment()
	pq := kernel.NewPriorityQueue(env, intLess)

	values := []int{5, 1, 4, 2, 3}
	for _, v := range values {
		pq.Put(v)
	}

	for i := 1; i <= 5; i++ {
		ev := pq.Get()
		assert.Equal(t, i, ev.Value())
	}
}

func TestPriorityQueueTiesAreFIFO(t *testing.T) {
	env := kernel.NewEnvironment()
	pq := kernel.NewPriorityQueue(env, func(a, b any) bool {
		return false
	})

	for i := 0; i < 10; i++ {
		pq.Put(i)
	}
	for i := 0; i < 10; i++ {
		ev := pq.Get()
		assert.Equal(t, i, ev.Value())
	}
}

func TestPriorityQueueGetBeforePutWaits(t *testing.T) {
	env := kernel.NewEnvironment()
	pq := kernel.NewPriorityQueue(env, intLess)

	getter := pq.Get()
	assert.True(t, getter.IsPending())

	pq.Put(9)
	assert.True(t, getter.IsSucceeded())
	assert.Equal(t, 9, getter.Value())
}

func TestPriorityQueueRandomOrderStillSortedOut(t *testing.T) {
	env := kernel.NewEnvironment()
	pq := kernel.NewPriorityQueue(env, intLess)

	n := 200
	for i := 0; i < n; i++ {
		pq.Put(rand.Intn(1000))
	}

	prev := -1
	for i := 0; i < n; i++ {
		v := pq.Get().Value().(int)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}
