package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gvwilson/asimpy/kernel"
	"github.com/gvwilson/asimpy/tracing"
)

var (
	traceCSVFlag    string
	traceSQLiteFlag string
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run one of the built-in scenarios to completion.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := findScenario(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "asimpy: unknown scenario %q; known scenarios: %s\n",
				args[0], scenarioNames())
			os.Exit(1)
		}

		cfg := loadConfig()
		cfg.debugf("running scenario %q", s.name)
		env := kernel.NewEnvironment()

		if tracer := attachTracer(env, cfg); tracer != nil {
			defer tracer.Flush()
		}

		s.run(env)
		cfg.debugf("scenario %q finished at %v", s.name, env.Now())
	},
}

func scenarioNames() string {
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.name
	}
	return strings.Join(names, ", ")
}

func attachTracer(env *kernel.Environment, cfg config) *tracing.Tracer {
	path := cfg.tracePath
	switch {
	case traceCSVFlag != "":
		return newTracer(env, tracing.NewCSVWriter(traceCSVFlag))
	case traceSQLiteFlag != "":
		return newTracer(env, tracing.NewSQLiteWriter(traceSQLiteFlag))
	case path != "":
		return newTracer(env, tracing.NewCSVWriter(path))
	default:
		return nil
	}
}

func newTracer(env *kernel.Environment, w tracing.Writer) *tracing.Tracer {
	t := tracing.NewTracer(w)
	env.AcceptHook(t)
	return t
}

func init() {
	runCmd.Flags().StringVar(&traceCSVFlag, "trace-csv", "", "write a CSV trace to this path")
	runCmd.Flags().StringVar(&traceSQLiteFlag, "trace-sqlite", "", "write a SQLite trace to this path")
	rootCmd.AddCommand(runCmd)
}
