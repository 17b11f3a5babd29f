package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gvwilson/asimpy/kernel"
)

func TestEveryScenarioRunsToCompletion(t *testing.T) {
	for _, s := range scenarios {
		s := s
		t.Run(s.name, func(t *testing.T) {
			env := kernel.NewEnvironment()
			assert.NotPanics(t, func() {
				s.run(env)
			})
		})
	}
}

func TestFindScenario(t *testing.T) {
	s, ok := findScenario("hello-timeouts")
	assert.True(t, ok)
	assert.Equal(t, "hello-timeouts", s.name)

	_, ok = findScenario("no-such-scenario")
	assert.False(t, ok)
}
