package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/strkit/strkit/strbuf"
)

var sortUnique bool

func init() {
	cmd := newSortCmd()
	cmd.Flags().BoolVarP(&sortUnique, "unique", "u", false, "Drop adjacent duplicate lines after sorting")
	rootCmd.AddCommand(cmd)
}

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <file>",
		Short: "Sort input lines lexicographically",
		Long: `The sort command orders the input's newline-separated lines by byte
value. Use "-" as the file to read stdin.

Example:
  strbufctl sort names.txt
  cat hosts | strbufctl sort - --unique`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(args)
		},
	}
	return cmd
}

func runSort(args []string) error {
	b, err := readInput(args[0])
	if err != nil {
		return err
	}

	// A trailing newline would otherwise contribute an empty final line.
	if b.Last() == '\n' {
		b.PopByte(-1)
	}

	lines := make([]*strbuf.Buffer, 0, b.CountSplitByte('\n'))
	for _, seg := range b.SplitByte('\n', nil) {
		lines = append(lines, strbuf.FromBytes(seg))
	}
	strbuf.Sort(lines)

	if sortUnique {
		kept := lines[:0]
		for i, l := range lines {
			if i == 0 || !strbuf.Equal(l, kept[len(kept)-1]) {
				kept = append(kept, l)
			}
		}
		lines = kept
	}

	if jsonOut {
		out := make([]string, len(lines))
		for i, l := range lines {
			out[i] = l.String()
		}
		return printJSON(map[string]interface{}{
			"count": len(lines),
			"lines": out,
		})
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	for _, l := range lines {
		bb.Write(l.Bytes())
		bb.WriteByte('\n')
	}
	_, err = os.Stdout.Write(bb.B)
	return err
}
