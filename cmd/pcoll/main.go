// Package main provides pcoll, a command line tool which exercises the
// persistent collections: stress runs against the weight-balanced tree engine,
// structure dumps, and timing runs.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/npillmayer/immutable/internal/config"
)

var (
	configPath string
	verbose    bool
)

// traceKeys are the tracers of the collection packages.
var traceKeys = []string{
	"immutable.fingertree",
	"immutable.wbtree",
	"immutable.set",
	"immutable.omap",
	"immutable.seq",
	"immutable.pcoll",
}

// tracer traces with key 'immutable.pcoll'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.pcoll")
}

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pcoll",
		Short: "pcoll exercises persistent collections",
		Long: `pcoll exercises the persistent collections of this module.

Commands:
  stress    Random add/remove runs checking tree invariants and height bounds
  dump      Print the internal structure of a collection
  bench     Time the basic operations for a range of sizes`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default .pcoll.yaml in . or $HOME)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace structural events")

	rootCmd.AddCommand(newStressCommand())
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newBenchCommand())
	return rootCmd
}

// loadConfig loads the configuration and adjusts trace levels.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Trace.Level
	if verbose {
		level = "debug"
	}
	for _, key := range traceKeys {
		setTraceLevel(tracing.Select(key), level)
	}
	tracer().Infof("trace level of collections is %s", level)
	return cfg, nil
}

func setTraceLevel(t tracing.Trace, level string) {
	switch level {
	case "debug":
		t.SetTraceLevel(tracing.LevelDebug)
	case "info":
		t.SetTraceLevel(tracing.LevelInfo)
	default:
		t.SetTraceLevel(tracing.LevelError)
	}
}
