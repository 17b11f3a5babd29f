// Package main provides the command-line interface for asimpy.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "asimpy",
	Short: "asimpy runs discrete-event simulations built on the asimpy kernel.",
	Long: `asimpy runs discrete-event simulations built on the asimpy kernel. ` +
		`It can run a built-in scenario to completion, optionally tracing every ` +
		`dispatched event, or serve one under the live monitor.`,
}

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "asimpy: could not load .env: %v\n", err)
	}
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
