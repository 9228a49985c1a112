package main

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/npillmayer/immutable/internal/config"
	"github.com/npillmayer/immutable/persistent/set"
	"github.com/npillmayer/immutable/persistent/wbtree"
)

func newStressCommand() *cobra.Command {
	var (
		steps int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Random add/remove run against an ordered set",
		Long: `stress interleaves random additions and removals on a set of integers.
It compares the set to a Go map after every step, validates the tree
invariants periodically, and checks that the tree height stays within
the height budget of the largest size the set has reached.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("steps") {
				cfg.Stress.Steps = steps
			}
			if cmd.Flags().Changed("seed") {
				cfg.Stress.Seed = seed
			}
			report, err := runStress(cfg.Stress)
			report.render(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().IntVar(&steps, "steps", config.DefaultStressSteps, "number of random operations")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultStressSeed, "random seed")
	return cmd
}

// stressReport summarizes a stress run.
type stressReport struct {
	steps, adds, removes int
	count, peak          int
	height, maxHeight    int
	budget               int
	checks               int
	elapsed              time.Duration
	allocated            uint64
	failure              error
}

func runStress(cfg config.StressConfig) (stressReport, error) {
	var report stressReport
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	r := rand.New(rand.NewSource(cfg.Seed))
	model := make(map[int]bool)
	s := set.New[int]()
	for step := 1; step <= cfg.Steps; step++ {
		k := r.Intn(cfg.KeyRange)
		if r.Float64() < cfg.RemoveRatio {
			s = s.Remove(k)
			delete(model, k)
			report.removes++
		} else {
			s = s.Add(k)
			model[k] = true
			report.adds++
		}
		report.steps = step
		report.peak = max(report.peak, s.Count())
		report.maxHeight = max(report.maxHeight, s.Height())
		if s.Count() != len(model) {
			report.failure = fmt.Errorf("step %d: set has %d elements, expected %d", step, s.Count(), len(model))
			break
		}
		if h, budget := s.Height(), wbtree.HeightBudget(report.peak); h > budget {
			report.failure = fmt.Errorf("step %d: height %d exceeds budget %d", step, h, budget)
			break
		}
		if cfg.CheckEvery > 0 && step%cfg.CheckEvery == 0 {
			report.checks++
			if err := s.Check(); err != nil {
				report.failure = fmt.Errorf("step %d: %w", step, err)
				break
			}
		}
	}
	report.elapsed = time.Since(start)
	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	report.allocated = after.TotalAlloc - before.TotalAlloc
	report.count = s.Count()
	report.height = s.Height()
	report.budget = wbtree.HeightBudget(report.peak)
	tracer().Debugf("stress run finished after %d steps", report.steps)
	return report, report.failure
}

func (report stressReport) render(w io.Writer) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"metric", "value"})
	tbl.AppendRows([]table.Row{
		{"steps", humanize.Comma(int64(report.steps))},
		{"adds / removes", fmt.Sprintf("%s / %s", humanize.Comma(int64(report.adds)), humanize.Comma(int64(report.removes)))},
		{"final count", humanize.Comma(int64(report.count))},
		{"peak count", humanize.Comma(int64(report.peak))},
		{"height (final / max)", fmt.Sprintf("%d / %d", report.height, report.maxHeight)},
		{"height budget", report.budget},
		{"invariant checks", report.checks},
		{"elapsed", report.elapsed.Round(time.Millisecond)},
		{"allocated", humanize.Bytes(report.allocated)},
	})
	tbl.Render()
	if report.failure != nil {
		color.New(color.FgRed).Fprintf(w, "FAIL: %v\n", report.failure)
		return
	}
	color.New(color.FgGreen).Fprintf(w, "PASS\n")
}
