package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"
)

var splitCountOnly bool

func init() {
	cmd := newSplitCmd()
	cmd.Flags().BoolVar(&splitCountOnly, "count", false, "Print only the segment count")
	rootCmd.AddCommand(cmd)
}

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <file> <separator>",
		Short: "Split a payload on a byte or byte sequence",
		Long: `The split command divides a payload into segments and prints one
segment per line. A single-byte separator splits on every occurrence of
that byte; a longer separator splits on the whole sequence. Use "-" as
the file to read stdin.

Example:
  strbufctl split data.csv ,
  strbufctl split access.log "::" --json
  echo "a,b,c" | strbufctl split - , --count`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args)
		},
	}
	return cmd
}

func runSplit(args []string) error {
	sep := args[1]
	if sep == "" {
		return fmt.Errorf("separator must not be empty")
	}

	b, err := readInput(args[0])
	if err != nil {
		return err
	}

	var segs [][]byte
	if len(sep) == 1 {
		if splitCountOnly {
			fmt.Printf("%d\n", b.CountSplitByte(sep[0]))
			return nil
		}
		segs = b.SplitByte(sep[0], nil)
	} else {
		if splitCountOnly {
			fmt.Printf("%d\n", b.CountSplitSeq([]byte(sep)))
			return nil
		}
		segs = b.SplitSeq([]byte(sep), nil)
	}

	if jsonOut {
		out := make([]string, len(segs))
		for i, s := range segs {
			out[i] = string(s)
		}
		return printJSON(map[string]interface{}{
			"count":    len(segs),
			"segments": out,
		})
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	for _, s := range segs {
		bb.Write(s)
		bb.WriteByte('\n')
	}
	_, err = os.Stdout.Write(bb.B)
	return err
}
