package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/npillmayer/immutable/internal/config"
	"github.com/npillmayer/immutable/persistent/omap"
	"github.com/npillmayer/immutable/persistent/seq"
	"github.com/npillmayer/immutable/persistent/set"
)

func newBenchCommand() *cobra.Command {
	var sizes []int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the basic operations of the collections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sizes") {
				cfg.Bench.Sizes = sizes
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			runBench(cmd.OutOrStdout(), cfg.Bench)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sizes, "sizes", config.DefaultBenchSizes, "collection sizes")
	return cmd
}

// measurement is the timing of one operation, repeated n times.
type measurement struct {
	operation string
	n         int
	elapsed   time.Duration
}

func (m measurement) perOp() time.Duration {
	if m.n == 0 {
		return 0
	}
	return m.elapsed / time.Duration(m.n)
}

func timed(operation string, n int, f func()) measurement {
	start := time.Now()
	f()
	return measurement{operation: operation, n: n, elapsed: time.Since(start)}
}

func benchSize(r *rand.Rand, n int) []measurement {
	keys := r.Perm(n)
	var ms []measurement
	var s set.Set[int]
	ms = append(ms, timed("set add (random)", n, func() {
		s = set.New[int]()
		for _, k := range keys {
			s = s.Add(k)
		}
	}))
	ms = append(ms, timed("set bulk build", n, func() {
		s = set.FromSlice(keys)
	}))
	ms = append(ms, timed("set contains", n, func() {
		for _, k := range keys {
			s.Contains(k)
		}
	}))
	ms = append(ms, timed("set remove", n, func() {
		t := s
		for _, k := range keys {
			t = t.Remove(k)
		}
	}))
	ms = append(ms, timed("map with", n, func() {
		m := omap.New[int, int]()
		for _, k := range keys {
			m = m.With(k, k)
		}
	}))
	var q seq.Seq[int]
	ms = append(ms, timed("seq push back", n, func() {
		q = seq.Empty[int]()
		for i := 0; i < n; i++ {
			q = q.PushBack(i)
		}
	}))
	ms = append(ms, timed("seq index", n, func() {
		for _, k := range keys {
			_, _ = q.At(k)
		}
	}))
	ms = append(ms, timed("seq split+concat", n, func() {
		for _, k := range keys {
			l, x, rest, _ := q.SplitAt(k)
			_ = l.AppendWith([]int{x}, rest)
		}
	}))
	ms = append(ms, timed("seq drain", n, func() {
		for t := q; !t.IsEmpty(); {
			t, _ = t.RestL()
		}
	}))
	return ms
}

func runBench(w io.Writer, cfg config.BenchConfig) {
	r := rand.New(rand.NewSource(cfg.Seed))
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"operation", "n", "total", "per op"})
	for _, n := range cfg.Sizes {
		tracer().Infof("benchmarking collections of size %d", n)
		for _, m := range benchSize(r, n) {
			tbl.AppendRow(table.Row{
				m.operation,
				humanize.Comma(int64(m.n)),
				m.elapsed.Round(time.Microsecond),
				m.perOp(),
			})
		}
		tbl.AppendSeparator()
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d sizes", len(cfg.Sizes))})
	tbl.Render()
}
