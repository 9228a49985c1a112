// Package config holds the configuration of the pcoll command.
package config

import (
	"errors"
	"fmt"
)

// Default values.
const (
	DefaultStressSeed        int64   = 4711
	DefaultStressSteps               = 100000
	DefaultStressKeyRange            = 10000
	DefaultStressRemoveRatio float64 = 0.3
	DefaultStressCheckEvery          = 1000
	DefaultBenchSeed         int64   = 1
	DefaultDumpElements              = 20
	DefaultTraceLevel                = "error"
)

// DefaultBenchSizes are the collection sizes benchmarked if none are configured.
var DefaultBenchSizes = []int{1000, 10000, 100000}

// Config is the top-level configuration of pcoll.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Stress StressConfig `mapstructure:"stress"`
	Bench  BenchConfig  `mapstructure:"bench"`
	Dump   DumpConfig   `mapstructure:"dump"`
	Trace  TraceConfig  `mapstructure:"trace"`
}

// StressConfig configures random add/remove runs against the tree engine.
type StressConfig struct {
	Seed        int64   `mapstructure:"seed"`
	Steps       int     `mapstructure:"steps"`
	KeyRange    int     `mapstructure:"key_range"`
	RemoveRatio float64 `mapstructure:"remove_ratio"`
	CheckEvery  int     `mapstructure:"check_every"`
}

// BenchConfig configures timing runs.
type BenchConfig struct {
	Seed  int64 `mapstructure:"seed"`
	Sizes []int `mapstructure:"sizes"`
}

// DumpConfig configures structure dumps.
type DumpConfig struct {
	Elements int `mapstructure:"elements"`
}

// TraceConfig selects the trace level of the collection packages.
type TraceConfig struct {
	Level string `mapstructure:"level"`
}

// Validation errors.
var (
	// ErrInvalidSteps indicates a non-positive number of stress steps.
	ErrInvalidSteps = errors.New("stress.steps must be positive")
	// ErrInvalidKeyRange indicates a non-positive key range.
	ErrInvalidKeyRange = errors.New("stress.key_range must be positive")
	// ErrInvalidRemoveRatio indicates a remove ratio outside [0, 1].
	ErrInvalidRemoveRatio = errors.New("stress.remove_ratio must be between 0 and 1")
	// ErrInvalidCheckEvery indicates a negative check interval.
	ErrInvalidCheckEvery = errors.New("stress.check_every must be non-negative")
	// ErrInvalidBenchSize indicates a non-positive collection size.
	ErrInvalidBenchSize = errors.New("bench.sizes must be positive")
	// ErrInvalidDumpElements indicates a negative element count.
	ErrInvalidDumpElements = errors.New("dump.elements must be non-negative")
	// ErrInvalidTraceLevel indicates an unknown trace level.
	ErrInvalidTraceLevel = errors.New("trace.level must be one of error, info, debug")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if err := c.validateStress(); err != nil {
		return err
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidBenchSize, n)
		}
	}
	if c.Dump.Elements < 0 {
		return ErrInvalidDumpElements
	}
	switch c.Trace.Level {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTraceLevel, c.Trace.Level)
	}
	return nil
}

func (c *Config) validateStress() error {
	if c.Stress.Steps <= 0 {
		return ErrInvalidSteps
	}
	if c.Stress.KeyRange <= 0 {
		return ErrInvalidKeyRange
	}
	if c.Stress.RemoveRatio < 0 || c.Stress.RemoveRatio > 1 {
		return ErrInvalidRemoveRatio
	}
	if c.Stress.CheckEvery < 0 {
		return ErrInvalidCheckEvery
	}
	return nil
}
