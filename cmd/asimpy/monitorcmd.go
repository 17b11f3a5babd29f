package main

import (
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/gvwilson/asimpy/kernel"
	"github.com/gvwilson/asimpy/monitor"
)

var (
	monitorPortFlag int
	monitorOpenFlag bool
)

var monitorCmd = &cobra.Command{
	Use:   "monitor <scenario>",
	Short: "Run a scenario while serving its live state over HTTP.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, ok := findScenario(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "asimpy: unknown scenario %q; known scenarios: %s\n",
				args[0], scenarioNames())
			os.Exit(1)
		}

		cfg := loadConfig()
		cfg.debugf("starting monitor for scenario %q", s.name)

		env := kernel.NewEnvironment()
		server := monitor.NewServer(env).WithPortNumber(monitorPortFlag)
		env.AcceptHook(server)

		addr := server.Start()
		if monitorOpenFlag {
			if err := browser.OpenURL("http://" + addr); err != nil {
				fmt.Fprintf(os.Stderr, "asimpy: could not open browser: %v\n", err)
			}
		}

		s.run(env)
	},
}

func init() {
	monitorCmd.Flags().IntVar(&monitorPortFlag, "port", 0, "port to serve the monitor on")
	monitorCmd.Flags().BoolVar(&monitorOpenFlag, "open", false, "open the monitor in a browser")
	rootCmd.AddCommand(monitorCmd)
}
