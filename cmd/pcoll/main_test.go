package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/immutable/internal/config"
)

func TestRunStressPasses(t *testing.T) {
	report, err := runStress(config.StressConfig{
		Seed:        1,
		Steps:       3000,
		KeyRange:    500,
		RemoveRatio: 0.4,
		CheckEvery:  250,
	})
	require.NoError(t, err)
	assert.Equal(t, 3000, report.steps)
	assert.Equal(t, 3000, report.adds+report.removes)
	assert.Equal(t, 12, report.checks)
	assert.LessOrEqual(t, report.maxHeight, report.budget)

	var out bytes.Buffer
	report.render(&out)
	assert.Contains(t, out.String(), "PASS")
	assert.Contains(t, out.String(), "3,000")
}

func TestRunDump(t *testing.T) {
	for _, kind := range []string{"set", "map", "seq"} {
		var out bytes.Buffer
		require.NoError(t, runDump(&out, kind, 7), kind)
		assert.Contains(t, out.String(), "7", kind)
	}
	var out bytes.Buffer
	assert.Error(t, runDump(&out, "heap", 7))
}

func TestRunBench(t *testing.T) {
	var out bytes.Buffer
	runBench(&out, config.BenchConfig{Seed: 1, Sizes: []int{50, 100}})
	assert.Contains(t, out.String(), "seq split+concat")
	assert.Contains(t, out.String(), "2 sizes")
}

func TestCommandLine(t *testing.T) {
	t.Setenv("PCOLL_STRESS_KEY_RANGE", "100")
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"stress", "--steps", "200"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "PASS")
}
