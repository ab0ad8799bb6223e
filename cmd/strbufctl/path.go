package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strkit/strkit/strbuf"
)

var pathExt string

func init() {
	cmd := newPathCmd()
	cmd.Flags().StringVar(&pathExt, "ext", "", "Extension to strip after the mode is applied")
	rootCmd.AddCommand(cmd)
}

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <dirname|basename> <path>...",
		Short: "Apply path edits to each argument",
		Long: `The path command rewrites each path argument in place: dirname keeps
the directory part, basename the final element. With --ext the given
extension is stripped afterwards.

Example:
  strbufctl path dirname /etc/ssh/sshd_config
  strbufctl path basename --ext .txt /tmp/notes.txt /tmp/todo.txt`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPath(args)
		},
	}
	return cmd
}

func runPath(args []string) error {
	mode := args[0]

	results := make([]string, 0, len(args)-1)
	for _, p := range args[1:] {
		b := strbuf.FromString(p)
		switch mode {
		case "dirname":
			if err := b.Dirname(); err != nil {
				return fmt.Errorf("dirname %q: %w", p, err)
			}
		case "basename":
			b.Basename()
		default:
			return fmt.Errorf("unknown mode %q (want dirname or basename)", mode)
		}
		if pathExt != "" {
			b.TrimExt(pathExt)
		}
		results = append(results, b.String())
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"mode":    mode,
			"results": results,
		})
	}
	for _, r := range results {
		fmt.Printf("%s\n", r)
	}
	return nil
}
