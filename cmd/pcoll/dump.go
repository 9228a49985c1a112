package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/npillmayer/immutable/persistent/omap"
	"github.com/npillmayer/immutable/persistent/seq"
	"github.com/npillmayer/immutable/persistent/set"
)

func newDumpCommand() *cobra.Command {
	var elements int
	cmd := &cobra.Command{
		Use:       "dump {set|map|seq}",
		Short:     "Print the internal structure of a collection",
		Long:      `dump builds a collection of 1…n integers by repeated insertion and prints its tree.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"set", "map", "seq"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("elements") {
				cfg.Dump.Elements = elements
			}
			return runDump(cmd.OutOrStdout(), args[0], cfg.Dump.Elements)
		},
	}
	cmd.Flags().IntVarP(&elements, "elements", "n", 0, "number of elements")
	return cmd
}

func runDump(w io.Writer, kind string, n int) error {
	switch kind {
	case "set":
		s := set.New[int]()
		for i := 1; i <= n; i++ {
			s = s.Add(i)
		}
		fmt.Fprintf(w, "set of %d elements, height %d\n", s.Count(), s.Height())
		fmt.Fprint(w, s.Dump())
	case "map":
		m := omap.New[int, string]()
		for i := 1; i <= n; i++ {
			m = m.With(i, strconv.Itoa(i))
		}
		fmt.Fprintf(w, "map of %d entries, height %d\n", m.Count(), m.Height())
		fmt.Fprint(w, m.Dump())
	case "seq":
		s := seq.Empty[int]()
		for i := 1; i <= n; i++ {
			s = s.PushBack(i)
		}
		fmt.Fprintf(w, "sequence of %d elements\n", s.Len())
		fmt.Fprint(w, s.Dump())
	default:
		return fmt.Errorf("unknown collection %q, expected set, map or seq", kind)
	}
	return nil
}
