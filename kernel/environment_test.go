package kernel_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gvwilson/asimpy/kernel"
)

var _ = Describe("Environment scheduler", func() {
	It("dispatches entries in nondecreasing time order", func() {
		env := kernel.NewEnvironment()
		numEntries := 200
		seen := make([]kernel.VTime, 0, numEntries)

		for i := 0; i < numEntries; i++ {
			t := kernel.VTime(rand.Float64() * 100)
			env.Schedule(t, func() {
				seen = append(seen, env.Now())
			})
		}

		env.Run(kernel.StopCondition{})

		Expect(seen).To(HaveLen(numEntries))
		for i := 1; i < len(seen); i++ {
			Expect(seen[i]).To(BeNumerically(">=", seen[i-1]))
		}
	})

	It("breaks same-time ties by schedule order", func() {
		env := kernel.NewEnvironment()
		var order []int

		for i := 0; i < 20; i++ {
			i := i
			env.Schedule(5, func() {
				order = append(order, i)
			})
		}

		env.Run(kernel.StopCondition{})

		for i := range order {
			Expect(order[i]).To(Equal(i))
		}
	})

	It("stops Run at the requested time without dispatching past it", func() {
		env := kernel.NewEnvironment()
		fired := false
		env.Schedule(10, func() { fired = true })

		env.Run(kernel.Until(5))

		Expect(env.Now()).To(Equal(kernel.VTime(5)))
		Expect(fired).To(BeFalse())
	})

	It("stops Run once the watched event resolves", func() {
		env := kernel.NewEnvironment()
		target := kernel.Timeout(env, 3, "done")
		env.Schedule(100, func() {})

		env.Run(kernel.UntilEvent(target))

		Expect(target.IsSucceeded()).To(BeTrue())
		Expect(env.Now()).To(Equal(kernel.VTime(3)))
	})

	It("panics when scheduling a negative delay", func() {
		env := kernel.NewEnvironment()
		Expect(func() { env.Schedule(-1, func() {}) }).To(Panic())
	})

	It("is reproducible across independent runs given identical scheduling", func() {
		run := func() []kernel.VTime {
			env := kernel.NewEnvironment()
			var trace []kernel.VTime
			for i := 0; i < 50; i++ {
				t := kernel.VTime(i % 7)
				env.Schedule(t, func() {
					trace = append(trace, env.Now())
				})
			}
			env.Run(kernel.StopCondition{})
			return trace
		}

		a, b := run(), run()
		Expect(a).To(Equal(b))
	})
})
