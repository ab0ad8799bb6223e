package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strkit/strkit/strbuf"
)

func init() {
	rootCmd.AddCommand(newJoinCmd())
}

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join <glue> <part>...",
		Short: "Join parts with a glue sequence",
		Long: `The join command concatenates the given parts separated by glue.

Example:
  strbufctl join / usr local bin
  strbufctl join ", " apples pears --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJoin(args)
		},
	}
	return cmd
}

func runJoin(args []string) error {
	b := strbuf.JoinStrings(args[1:], args[0])

	if jsonOut {
		return printJSON(map[string]interface{}{
			"result": b.String(),
			"length": b.Len(),
		})
	}
	fmt.Printf("%s\n", b.String())
	return nil
}
