package main

import (
	"log"
	"os"
)

// config holds the settings sourced from environment variables (which
// root.go's init loads from a .env file, via ASIMPY_LOG_LEVEL and
// ASIMPY_TRACE_PATH), with flags on individual commands taking
// precedence when set explicitly.
type config struct {
	logLevel  string
	tracePath string
}

func loadConfig() config {
	cfg := config{logLevel: "info"}

	if v := os.Getenv("ASIMPY_LOG_LEVEL"); v != "" {
		cfg.logLevel = v
	}
	cfg.tracePath = os.Getenv("ASIMPY_TRACE_PATH")

	return cfg
}

// debugf logs format/args to stderr only when ASIMPY_LOG_LEVEL=debug,
// the same coarse level-gating the rest of this command line tool uses
// instead of pulling in a leveled-logging library for a handful of
// diagnostic lines.
func (c config) debugf(format string, args ...any) {
	if c.logLevel != "debug" {
		return
	}
	log.Printf("asimpy: "+format, args...)
}
