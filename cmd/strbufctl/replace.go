package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var replaceInPlace bool

func init() {
	cmd := newReplaceCmd()
	cmd.Flags().BoolVarP(&replaceInPlace, "in-place", "i", false, "Rewrite the input file instead of printing")
	rootCmd.AddCommand(cmd)
}

func newReplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace <file> <from> <to>",
		Short: "Replace every occurrence of a byte sequence",
		Long: `The replace command rewrites every occurrence of one byte sequence
with another. When both sequences are a single byte the payload is
remapped in place without resizing; otherwise the payload grows or
shrinks as needed. Use "-" as the file to read stdin.

Example:
  strbufctl replace config.txt old new
  strbufctl replace data.csv ";" "," --in-place
  echo a.b.c | strbufctl replace - . -`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplace(args)
		},
	}
	return cmd
}

func runReplace(args []string) error {
	path, from, to := args[0], args[1], args[2]
	if from == "" {
		return fmt.Errorf("from sequence must not be empty")
	}
	if replaceInPlace && path == "-" {
		return fmt.Errorf("--in-place needs a file, not stdin")
	}

	b, err := readInput(path)
	if err != nil {
		return err
	}

	if len(from) == 1 && len(to) == 1 {
		b.ReplaceByte(from[0], to[0])
	} else if err := b.ReplaceAll([]byte(from), []byte(to)); err != nil {
		return fmt.Errorf("failed to replace: %w", err)
	}

	if replaceInPlace {
		printVerbose("Writing: %s\n", path)
		return b.WriteFileSync(path)
	}
	if jsonOut {
		return printJSON(map[string]interface{}{
			"result": b.String(),
			"length": b.Len(),
		})
	}
	_, err = os.Stdout.Write(b.Bytes())
	return err
}
