package main

import (
	"fmt"

	"github.com/gvwilson/asimpy/examples/distlock"
	"github.com/gvwilson/asimpy/examples/msgqueue"
	"github.com/gvwilson/asimpy/examples/worksteal"
	"github.com/gvwilson/asimpy/kernel"
)

// scenario is a named, self-contained simulation runnable from the CLI.
// It is handed a fresh Environment by its caller so that `asimpy run` and
// `asimpy monitor` can drive it the same way, the only difference being
// which hook (a tracer or a monitor.Server) is attached to that
// Environment before the scenario runs.
type scenario struct {
	name string
	run  func(env *kernel.Environment)
}

var scenarios = []scenario{
	{"hello-timeouts", scenarioHelloTimeouts},
	{"zero-delay", scenarioZeroDelay},
	{"producer-consumer", scenarioProducerConsumer},
	{"race-cancel", scenarioRaceCancel},
	{"resource-pool", scenarioResourcePool},
	{"priority-queue", scenarioPriorityQueue},
	{"msgqueue", scenarioMsgQueue},
	{"worksteal", scenarioWorksteal},
	{"distlock", scenarioDistlock},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.name == name {
			return s, true
		}
	}
	return scenario{}, false
}

func scenarioHelloTimeouts(env *kernel.Environment) {
	for _, d := range []kernel.VTime{1, 5, 3} {
		d := d
		env.ScheduleLabeled(d, "hello-timeout", func() {
			fmt.Printf("timeout fired at %v\n", env.Now())
		})
	}
	env.Run(kernel.StopCondition{})
}

func scenarioZeroDelay(env *kernel.Environment) {
	for _, label := range []string{"A", "B", "C"} {
		label := label
		env.ScheduleLabeled(0, "zero-delay", func() {
			fmt.Printf("%s ran at %v\n", label, env.Now())
		})
	}
	env.Run(kernel.StopCondition{})
}

func scenarioProducerConsumer(env *kernel.Environment) {
	q := kernel.NewQueue(env)

	kernel.Spawn(env, func(p *kernel.Process) (any, error) {
		for _, item := range []int{10, 20, 30} {
			p.Sleep(1)
			if _, err := p.Await(q.Put(item)); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	kernel.Spawn(env, func(p *kernel.Process) (any, error) {
		for i := 0; i < 3; i++ {
			v, err := p.Await(q.Get())
			if err != nil {
				return nil, err
			}
			fmt.Printf("consumed %v at %v\n", v, p.Now())
		}
		return nil, nil
	})

	env.Run(kernel.StopCondition{})
}

func scenarioRaceCancel(env *kernel.Environment) {
	q := kernel.NewQueue(env)

	kernel.Spawn(env, func(p *kernel.Process) (any, error) {
		result := kernel.FirstOf(env,
			kernel.Named{Key: "timeout", Event: kernel.Timeout(env, 5, nil)},
			kernel.Named{Key: "item", Event: q.Get()},
		)
		v, err := p.Await(result)
		if err != nil {
			return nil, err
		}
		won := v.(kernel.FirstOfResult)
		fmt.Printf("%s won at %v with %v\n", won.Key, p.Now(), won.Value)
		return won, nil
	})

	env.Schedule(3, func() {
		q.Put("x")
	})

	env.Run(kernel.StopCondition{})
}

func scenarioResourcePool(env *kernel.Environment) {
	r := kernel.NewResource(env, 2)

	holder := func(i int, holdFor kernel.VTime) kernel.Body {
		return func(p *kernel.Process) (any, error) {
			if _, err := p.Await(r.Acquire()); err != nil {
				return nil, err
			}
			fmt.Printf("holder %d acquired at %v\n", i, p.Now())
			p.Sleep(holdFor)
			r.Release()
			fmt.Printf("holder %d released at %v\n", i, p.Now())
			return nil, nil
		}
	}

	kernel.Spawn(env, holder(0, 2))
	kernel.Spawn(env, holder(1, 5))
	kernel.Spawn(env, holder(2, 1))

	env.Run(kernel.StopCondition{})
}

func scenarioPriorityQueue(env *kernel.Environment) {
	type item struct {
		priority int
		label    string
	}
	pq := kernel.NewPriorityQueue(env, func(a, b any) bool {
		return a.(item).priority < b.(item).priority
	})

	pq.Put(item{3, "c"})
	pq.Put(item{1, "a"})
	pq.Put(item{2, "b"})

	for i := 0; i < 3; i++ {
		v := pq.Get().Value().(item)
		fmt.Printf("dequeued %s (priority %d)\n", v.label, v.priority)
	}
	env.Run(kernel.StopCondition{})
}

func scenarioMsgQueue(env *kernel.Environment) {
	broker := msgqueue.NewBroker(env)
	kernel.Spawn(env, msgqueue.Publisher(broker, "weather", []string{"sunny", "rainy", "cloudy"}, 1))
	kernel.Spawn(env, msgqueue.Subscriber(env, broker, "weather", func(msg msgqueue.Message) {
		fmt.Printf("subscriber got %q at %v\n", msg.Payload, env.Now())
	}, 3))

	env.Run(kernel.StopCondition{})
}

func scenarioWorksteal(env *kernel.Environment) {
	sched := worksteal.NewScheduler(env, 3)
	for i := 0; i < 9; i++ {
		sched.Submit(worksteal.Task{ID: i, Cost: kernel.VTime(1 + i%3)})
	}
	sched.Run()
	env.Run(kernel.StopCondition{})
}

func scenarioDistlock(env *kernel.Environment) {
	server := distlock.NewServer(env, 4)
	kernel.Spawn(env, server.Body())
	kernel.Spawn(env, distlock.Client(env, server, "alice", 1, 6))
	kernel.Spawn(env, distlock.Client(env, server, "bob", 2, 6))

	env.Run(kernel.StopCondition{})
}
